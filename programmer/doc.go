// Package programmer orchestrates read, write and erase operations against
// 93Cxx serial EEPROMs.
//
// A Programmer drives one device through a bus.Bus, using the headers from
// the protocol package and the geometry of a finalized device.Selection.
//
// # Programming Sequence
//
// The family programs one word at a time. Each write is preceded by exactly
// one write-enable for the whole operation, and followed by polling the
// device's self-timed completion status:
//
//  1. Write-enable (EWEN)
//  2. For every word: WRITE header + data, then poll status until 0xFF
//
// Words self-erase before programming, so no per-word erase is issued.
// Erase-all goes through the same enable step, then the ERAL control
// command, then the same ready polling.
//
// # Usage
//
//	p, _ := device.Lookup("93c46")
//	sel, _ := p.Select(false)
//	prog := programmer.New(spiBus, sel,
//	    programmer.WithReadyTimeout(time.Second),
//	    programmer.WithProgressCallback(progressFunc),
//	)
//
//	img, err := prog.ReadImage(ctx)
//	err = prog.WriteImage(ctx, img)
//	err = prog.Erase(ctx)
//
// # Failure Behavior
//
// Any transfer failure aborts the running operation immediately; there are
// no internal retries. Reads either return a fully populated image or an
// error. An aborted write can leave the device partially programmed: that
// exposure is inherent to the word-at-a-time programming model and is not
// hidden here.
//
// Operations on one Programmer are serialized internally; the device and the
// bus admit only one in-flight transaction.
package programmer
