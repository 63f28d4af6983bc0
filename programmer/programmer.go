package programmer

import (
	"context"
	"sync"
	"time"

	"github.com/flashkit/go-93cxx/bus"
	"github.com/flashkit/go-93cxx/device"
	"github.com/flashkit/go-93cxx/protocol"
)

// Programmer drives read, write and erase operations against one 93Cxx
// device over a bus.Bus.
//
// All operations and primitives are mutually exclusive: the Programmer
// guarantees at most one in-flight transaction per device.
type Programmer struct {
	mu     sync.Mutex
	bus    bus.Bus
	sel    *device.Selection
	config Config
}

// New creates a Programmer for the given bus and finalized device selection.
//
// Example:
//
//	p, _ := device.Lookup("93c66")
//	sel, _ := p.Select(true)
//	prog := programmer.New(spiBus, sel,
//	    programmer.WithReadyTimeout(time.Second),
//	)
func New(b bus.Bus, sel *device.Selection, opts ...Option) *Programmer {
	if b == nil {
		panic("bus cannot be nil")
	}
	if sel == nil {
		panic("device selection cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Programmer{
		bus:    b,
		sel:    sel,
		config: cfg,
	}
}

// ReadImage reads the entire device into a freshly allocated buffer of
// exactly the device's size, in address-ascending order.
//
// Stepped reads issue one transaction per word; burst mode (WithBurstRead)
// issues a single transaction spanning the whole array, trading header
// overhead for the device's auto-increment behavior under one chip-select
// assertion. Any failure aborts immediately: the image is returned fully
// populated or not at all.
func (p *Programmer) ReadImage(ctx context.Context) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	start := time.Now()
	wordSize := p.sel.WordSize()
	words := p.sel.Words()
	img := make([]byte, p.sel.Size())

	if p.config.BurstRead {
		p.reportProgress(Progress{Phase: PhaseReading, TotalWords: words})
		if err := p.readAt(ctx, 0, img); err != nil {
			return nil, err
		}
		p.complete(start, words, len(img))
		return img, nil
	}

	for w := 0; w < words; w++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		off := w * wordSize
		if err := p.readAt(ctx, uint16(w), img[off:off+wordSize]); err != nil {
			return nil, err
		}

		p.reportProgress(Progress{
			Phase:       PhaseReading,
			CurrentWord: w + 1,
			TotalWords:  words,
			Percentage:  float64(w+1) / float64(words) * 100,
			BytesDone:   off + wordSize,
			Elapsed:     time.Since(start),
		})
	}

	p.complete(start, words, len(img))
	return img, nil
}

// WriteImage programs the entire device from img, which must be exactly the
// device's size. The sequence is write-enable, then one WRITE per word, each
// followed by status polling until the device's self-timed cycle completes.
//
// A failure mid-loop aborts immediately and can leave the device partially
// programmed; that exposure is inherent to word-at-a-time programming.
func (p *Programmer) WriteImage(ctx context.Context, img []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(img) != p.sel.Size() {
		return &ImageSizeError{Got: len(img), Want: p.sel.Size()}
	}

	start := time.Now()
	wordSize := p.sel.WordSize()
	words := p.sel.Words()

	p.reportProgress(Progress{Phase: PhaseEnabling, TotalWords: words})
	if err := p.control(ctx, protocol.SubcodeWriteEnable, "write-enable"); err != nil {
		return err
	}

	for w := 0; w < words; w++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		off := w * wordSize
		if err := p.writeAt(ctx, uint16(w), img[off:off+wordSize]); err != nil {
			return err
		}
		if err := p.waitReady(ctx, "write"); err != nil {
			return err
		}

		p.reportProgress(Progress{
			Phase:       PhaseWriting,
			CurrentWord: w + 1,
			TotalWords:  words,
			Percentage:  float64(w+1) / float64(words) * 100,
			BytesDone:   off + wordSize,
			Elapsed:     time.Since(start),
		})
	}

	p.logInfo("programming complete",
		"device", p.sel.Name(),
		"words", words,
		"bytes", len(img),
		"elapsed", time.Since(start).String(),
	)
	p.complete(start, words, len(img))
	return nil
}

// Erase erases the entire array: write-enable, then the erase-all control
// command, then status polling until the device reports ready. Erased cells
// read back as 0xFF.
func (p *Programmer) Erase(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	start := time.Now()
	words := p.sel.Words()

	p.reportProgress(Progress{Phase: PhaseEnabling, TotalWords: words})
	if err := p.control(ctx, protocol.SubcodeWriteEnable, "write-enable"); err != nil {
		return err
	}

	p.reportProgress(Progress{Phase: PhaseErasing, TotalWords: words})
	if err := p.control(ctx, protocol.SubcodeEraseAll, "erase-all"); err != nil {
		return err
	}
	if err := p.waitReady(ctx, "erase"); err != nil {
		return err
	}

	p.logInfo("erase complete", "device", p.sel.Name(), "elapsed", time.Since(start).String())
	p.complete(start, words, 0)
	return nil
}

// ReadAt reads len(buf) bytes starting at the given word address.
func (p *Programmer) ReadAt(ctx context.Context, word uint16, buf []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.readAt(ctx, word, buf)
}

// WriteAt programs one word at the given word address. The device must be
// write-enabled; callers are responsible for waiting on completion via
// ReadStatus or using WriteImage, which handles both.
func (p *Programmer) WriteAt(ctx context.Context, word uint16, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writeAt(ctx, word, data)
}

// ReadStatus polls the device's write-completion status. The device returns
// protocol.StatusReady once its self-timed cycle has finished.
func (p *Programmer) ReadStatus(ctx context.Context) (byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.readStatus(ctx)
}

// EnableWrite unlocks programming (EWEN).
func (p *Programmer) EnableWrite(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.control(ctx, protocol.SubcodeWriteEnable, "write-enable")
}

// DisableWrite locks programming again (EWDS). WriteImage does not call this
// on completion; issue it explicitly when the bus is shared or wiring makes
// stray transactions plausible.
func (p *Programmer) DisableWrite(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.control(ctx, protocol.SubcodeWriteDisable, "write-disable")
}

// EraseAll issues the erase-all control command (ERAL) without waiting for
// completion. The device must be write-enabled.
func (p *Programmer) EraseAll(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.control(ctx, protocol.SubcodeEraseAll, "erase-all")
}

// readAt issues a READ header chained with a receive leg.
func (p *Programmer) readAt(ctx context.Context, word uint16, buf []byte) error {
	hdr := protocol.EncodeRead(p.sel.AddrBits(), word)
	err := p.bus.Transact(ctx,
		p.transfer(hdr.Bytes(), nil),
		p.transfer(nil, buf),
	)
	if err != nil {
		return &TransferError{Op: "read", Err: err}
	}
	return nil
}

// writeAt issues a WRITE header chained with a transmit leg.
func (p *Programmer) writeAt(ctx context.Context, word uint16, data []byte) error {
	hdr := protocol.EncodeWrite(p.sel.AddrBits(), word)
	err := p.bus.Transact(ctx,
		p.transfer(hdr.Bytes(), nil),
		p.transfer(data, nil),
	)
	if err != nil {
		return &TransferError{Op: "write", Err: err}
	}
	return nil
}

// readStatus issues a single 1-byte receive-only transfer with no header.
func (p *Programmer) readStatus(ctx context.Context) (byte, error) {
	var status [1]byte
	if err := p.bus.Transact(ctx, p.transfer(nil, status[:])); err != nil {
		return 0, &TransferError{Op: "status", Err: err}
	}
	return status[0], nil
}

// control issues a single header-only control-group transfer.
func (p *Programmer) control(ctx context.Context, subcode uint16, op string) error {
	hdr := protocol.EncodeControl(p.sel.AddrBits(), subcode)
	if err := p.bus.Transact(ctx, p.transfer(hdr.Bytes(), nil)); err != nil {
		return &TransferError{Op: op, Err: err}
	}
	p.logDebug("control command", "op", op)
	return nil
}

// waitReady polls the status byte until the device reports completion of its
// self-timed cycle, honoring the configured timeout, poll interval and
// context cancellation.
func (p *Programmer) waitReady(ctx context.Context, op string) error {
	start := time.Now()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		status, err := p.readStatus(ctx)
		if err != nil {
			return err
		}
		if status == protocol.StatusReady {
			return nil
		}

		if p.config.ReadyTimeout > 0 && time.Since(start) > p.config.ReadyTimeout {
			return &TimeoutError{Op: op, Waited: time.Since(start)}
		}
		if p.config.PollInterval > 0 {
			time.Sleep(p.config.PollInterval)
		}
	}
}

// transfer builds one bus leg with the protocol's fixed transfer shape.
func (p *Programmer) transfer(tx, rx []byte) bus.Transfer {
	return bus.Transfer{
		Tx:          tx,
		Rx:          rx,
		BitsPerWord: protocol.BitsPerWord,
		Speed:       p.config.ClockSpeed,
	}
}

// complete emits the terminal progress report.
func (p *Programmer) complete(start time.Time, words, bytes int) {
	p.reportProgress(Progress{
		Phase:       PhaseComplete,
		CurrentWord: words,
		TotalWords:  words,
		Percentage:  100,
		BytesDone:   bytes,
		Elapsed:     time.Since(start),
	})
}

// reportProgress calls the progress callback if configured.
func (p *Programmer) reportProgress(progress Progress) {
	if p.config.ProgressCallback != nil {
		p.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (p *Programmer) logDebug(msg string, keysAndValues ...interface{}) {
	if p.config.Logger != nil {
		p.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (p *Programmer) logInfo(msg string, keysAndValues ...interface{}) {
	if p.config.Logger != nil {
		p.config.Logger.Info(msg, keysAndValues...)
	}
}
