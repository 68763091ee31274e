// Copyright (c) Jeff Berkowitz 2021, 2022. All rights reserved.

package host

// Command/response handling for the loader board. See package proto
// for the wire format.

import (
	"fmt"
	"log"
	"time"

	sp "github.com/gmofishsauce/bcasm/pkg/proto"
)

var debug = false

// SetDebug turns on logging of every command sent.
func SetDebug(setting bool) {
	debug = setting
}

const responseDelay = 50 * time.Millisecond

var syncRetryDelay = 1 * time.Second

// Conn is a byte-at-a-time connection to the loader. *link.Link
// satisfies it.
type Conn interface {
	ReadFor(timeout time.Duration) (byte, error)
	Write(b []byte) error
}

type UnexpectedResponseError struct {
	Command  byte
	Response byte
}

func (u *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("command 0x%X: unexpected response 0x%X", u.Command, u.Response)
}

func establishConnection(conn Conn) error {
	if err := drain(conn); err != nil {
		return err
	}
	if err := getSyncResponse(conn); err != nil {
		return err
	}
	if err := checkProtocolVersion(conn); err != nil {
		return err
	}
	if debug {
		log.Println("protocol version OK")
	}
	return nil
}

// The loader never sends more than an ack and a few response bytes
// without being asked, so anything still arriving after a few hundred
// reads means it is babbling.
func drain(conn Conn) error {
	for i := 0; i < 300; i++ {
		if _, err := conn.ReadFor(responseDelay); err != nil {
			return nil
		}
	}
	return fmt.Errorf("loader is transmitting continuously")
}

// Send syncs until one is acked, then swallow any delayed acks.
func getSyncResponse(conn Conn) error {
	nSent := 0
	tries := 3

	for i := 0; i < tries; i++ {
		err := doCommand(conn, sp.CmdSync)
		nSent++
		if err != nil {
			log.Printf("sync command failed: %s\n", err)
		} else {
			for nSent--; nSent > 0; nSent-- {
				conn.ReadFor(responseDelay)
			}
			return nil
		}
		time.Sleep(syncRetryDelay)
	}
	return fmt.Errorf("failed to synchronize")
}

func checkProtocolVersion(conn Conn) error {
	b, err := doFixedCommand(conn, []byte{sp.CmdGetVer}, 1)
	if err != nil {
		return err
	}
	if b[0] != sp.ProtocolVersion {
		return fmt.Errorf("protocol version mismatch: host 0x%02X, loader 0x%02X",
			sp.ProtocolVersion, b[0])
	}
	return nil
}

// Do a command with no arguments and no response.
func doCommand(conn Conn, cmd byte) error {
	_, err := doFixedCommand(conn, []byte{cmd}, 0)
	return err
}

func getAck(conn Conn, cmd byte) error {
	b, err := conn.ReadFor(responseDelay)
	if err != nil {
		return err
	}
	if b != sp.Ack(cmd) {
		return &UnexpectedResponseError{cmd, b}
	}
	return nil
}

// Send a command byte and its fixed arguments, wait for the ack, then
// read expected response bytes. On a nak the response is empty and the
// error is non-nil.
func doFixedCommand(conn Conn, fixed []byte, expected int) ([]byte, error) {
	var response []byte

	if len(fixed) < 1 || len(fixed) > 8 {
		return response, fmt.Errorf("invalid fixed command length")
	}
	if expected < 0 || expected > 8 {
		return response, fmt.Errorf("invalid fixed response expected")
	}
	if debug {
		log.Printf("doFixedCommand: sending % X\n", fixed)
	}
	if err := conn.Write(fixed); err != nil {
		return response, err
	}
	if err := getAck(conn, fixed[0]); err != nil {
		return response, err
	}

	response = make([]byte, expected)
	for i := 0; i < expected; i++ {
		b, err := conn.ReadFor(responseDelay)
		if err != nil {
			return response, err
		}
		response[i] = b
	}
	return response, nil
}
