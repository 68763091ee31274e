// Copyright (c) Jeff Berkowitz 2021. All rights reserved.

// Package link provides a synchronous byte I/O interface to the loader
// board over a serial line. Opening the port usually asserts DTR, which
// resets the board, so Open waits for the board to come back up before
// returning.

// The serial port object is not safe for concurrent use. Everything here
// runs on the caller's goroutine and reads use the port's read timeout
// instead of a blocking reader goroutine.

package link

import (
	"fmt"
	"log"
	"syscall"
	"time"

	"go.bug.st/serial"
)

const resetDelay = 2 * time.Second

var debug bool = false

// SetDebug turns on logging of every byte sent and received.
func SetDebug(setting bool) {
	debug = setting
}

type Link struct {
	port serial.Port
}

type NoResponseError time.Duration

func (nre NoResponseError) Error() string {
	return fmt.Sprintf("read from loader: no response after %v", time.Duration(nre))
}

// Open the serial device at baudRate, 8N1.
func Open(deviceName string, baudRate int) (*Link, error) {
	mode := &serial.Mode{BaudRate: baudRate, DataBits: 8, Parity: serial.NoParity, StopBits: serial.OneStopBit}
	port, err := serial.Open(deviceName, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", deviceName, err)
	}

	// Bytes sent while the board is still resetting are lost.
	log.Println("serial port is open - delaying for loader reset")
	time.Sleep(resetDelay)
	return &Link{port: port}, nil
}

// Ports lists the serial devices present on this host.
func Ports() ([]string, error) {
	return serial.GetPortsList()
}

// Read one byte, waiting at most timeout.
func (l *Link) ReadFor(timeout time.Duration) (byte, error) {
	b := make([]byte, 1)
	var n int
	var err error

	if err = l.port.SetReadTimeout(timeout); err != nil {
		return 0, err
	}
	// The loop is only for EINTR.
	for {
		n, err = l.port.Read(b)
		if !isRetryableSyscallError(err) {
			break
		}
	}
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, NoResponseError(timeout)
	}
	if debug {
		log.Printf("ReadFor: 0x%02X\n", b[0])
	}
	return b[0], nil
}

// Write all of b.
func (l *Link) Write(b []byte) error {
	if debug {
		log.Printf("Write: % X\n", b)
	}
	for len(b) > 0 {
		n, err := l.port.Write(b)
		if isRetryableSyscallError(err) {
			b = b[n:]
			continue
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("write consumed 0 bytes")
		}
		b = b[n:]
	}
	return nil
}

// Close the connection to the loader.
func (l *Link) Close() error {
	if l.port == nil {
		return fmt.Errorf("internal error: close(): port not open")
	}
	if err := l.port.Close(); err != nil {
		log.Printf("close serial port: %s", err)
		return err
	}
	log.Println("serial port closed")
	l.port = nil
	return nil
}

func isRetryableSyscallError(err error) bool {
	if errno, ok := err.(syscall.Errno); ok {
		return errno == syscall.EINTR
	}
	return false
}
