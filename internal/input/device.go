package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"go.bug.st/serial"

	"github.com/dawkrish/flappy-duel/internal/config"
)

// readingBuffer is how many readings may queue between two ticks before new
// ones are dropped. The board prints far fewer lines than this per frame.
const readingBuffer = 64

// maxLineLength bounds one device line. Longer lines are noise (usually a
// wrong baud rate) and are skipped.
const maxLineLength = 4096

// Device reads the push-button board. Lines are read on a background
// goroutine and handed over through a channel, so Poll never blocks a tick.
type Device struct {
	port     io.ReadCloser
	readings chan Reading
	edges    *EdgeDetector
	logger   zerolog.Logger

	connected atomic.Bool
	closed    atomic.Bool
	closeOnce sync.Once
	done      chan struct{}
}

// Open opens the serial port and waits for the board to settle; most boards
// reset when the port is opened.
func Open(cfg config.Device, logger zerolog.Logger) (*Device, error) {
	port, err := serial.Open(cfg.Port, &serial.Mode{BaudRate: cfg.Baud})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Port, err)
	}

	time.Sleep(time.Duration(cfg.SettleMS) * time.Millisecond)
	if err := port.ResetInputBuffer(); err != nil {
		logger.Debug().Err(err).Msg("reset input buffer")
	}

	return NewDevice(port, cfg.ButtonMode, logger), nil
}

// NewDevice starts reading button lines from rc.
func NewDevice(rc io.ReadCloser, mode string, logger zerolog.Logger) *Device {
	d := &Device{
		port:     rc,
		readings: make(chan Reading, readingBuffer),
		edges:    NewEdgeDetector(mode),
		logger:   logger,
		done:     make(chan struct{}),
	}
	d.connected.Store(true)
	go d.readLoop()
	return d
}

func (d *Device) readLoop() {
	defer close(d.done)
	defer d.connected.Store(false)

	br := bufio.NewReaderSize(d.port, maxLineLength)
	for {
		line, err := br.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			d.logger.Warn().Int("limit", maxLineLength).Msg("skipping over-long device line")
			if err := discardLine(br); err != nil {
				d.stopped(err)
				return
			}
			continue
		}
		if len(line) > 0 {
			d.handleLine(line)
		}
		if err != nil {
			d.stopped(err)
			return
		}
	}
}

// discardLine skips the rest of a line that did not fit the buffer.
func discardLine(br *bufio.Reader) error {
	for {
		_, err := br.ReadSlice('\n')
		if !errors.Is(err, bufio.ErrBufferFull) {
			return err
		}
	}
}

func (d *Device) handleLine(raw []byte) {
	line, err := DecodeLine(raw)
	if err != nil {
		d.logger.Warn().Err(err).Msg("skipping device line")
		return
	}
	r, ok, err := ParseLine(line)
	if err != nil {
		d.logger.Warn().Err(err).Msg("skipping device line")
		return
	}
	if !ok {
		return
	}

	select {
	case d.readings <- r:
	default:
		d.logger.Debug().Int("button", r.Button).Msg("reading buffer full, dropping")
	}
}

func (d *Device) stopped(err error) {
	if d.closed.Load() {
		return
	}
	d.logger.Warn().Err(err).Msg("button device stopped, keyboard only")
}

// Poll drains the readings that arrived since the last call and reports
// which buttons were pressed. It returns immediately when nothing arrived.
func (d *Device) Poll() [2]bool {
	var batch []Reading
	for {
		select {
		case r := <-d.readings:
			batch = append(batch, r)
		default:
			return d.edges.Tick(batch)
		}
	}
}

// Connected is false once the port has failed or been closed.
func (d *Device) Connected() bool {
	return d.connected.Load()
}

// Close closes the port and waits for the reader to stop.
func (d *Device) Close() error {
	var err error
	d.closeOnce.Do(func() {
		d.closed.Store(true)
		err = d.port.Close()
		<-d.done
	})
	return err
}
