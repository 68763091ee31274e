// Copyright (c) Jeff Berkowitz 2021, 2022. All rights reserved.

// Package proto defines the byte protocol between the host and the
// loader board. Every command is a command byte followed by a fixed
// number of argument bytes. The loader answers each command with an
// ack, the complement of the command byte, followed by a fixed number
// of response bytes.
package proto

// Bump when the command set or any argument layout changes. The loader
// firmware is built from the header written by "bcasm protogen".
const ProtocolVersion = 0x02

const (
	CmdBase     = 0xE0
	CmdSync     = CmdBase + 0 // no args, no response
	CmdGetVer   = CmdBase + 1 // no args, response: version byte
	CmdLoadWord = CmdBase + 2 // args: AH AL DH DL, no response
	CmdDone     = CmdBase + 3 // no args, no response
)

// Command describes one protocol command.
type Command struct {
	Name      string
	Value     byte
	NArgs     int
	NResponse int
}

var Commands = []Command{
	{"Sync", CmdSync, 0, 0},
	{"GetVer", CmdGetVer, 0, 1},
	{"LoadWord", CmdLoadWord, 4, 0},
	{"Done", CmdDone, 0, 0},
}

// Ack returns the byte the loader sends to acknowledge cmd.
func Ack(cmd byte) byte {
	return ^cmd
}
