// Copyright (c) Jeff Berkowitz 2021, 2023. All rights reserved.

package host

// Downloader for assembled programs. Each word is sent with its own
// LoadWord command so that ORG gaps cost nothing on the wire.

import (
	"fmt"
	"log"

	"github.com/gmofishsauce/bcasm/pkg/asm"
	sp "github.com/gmofishsauce/bcasm/pkg/proto"
)

// Download synchronizes with the loader and stores every word at its
// address, then tells the loader the download is complete.
func Download(conn Conn, words []asm.Word) error {
	if err := establishConnection(conn); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	log.Printf("downloading %d words\n", len(words))

	cmd := make([]byte, 5)
	for _, w := range words {
		cmd[0] = sp.CmdLoadWord
		cmd[1] = byte(w.Addr >> 8)  // AH
		cmd[2] = byte(w.Addr)       // AL
		cmd[3] = byte(w.Value >> 8) // DH
		cmd[4] = byte(w.Value)      // DL
		if _, err := doFixedCommand(conn, cmd, 0); err != nil {
			return fmt.Errorf("word at %s: %w", w.Addr, err)
		}
	}
	if err := doCommand(conn, sp.CmdDone); err != nil {
		return fmt.Errorf("done: %w", err)
	}
	log.Println("download complete")
	return nil
}
