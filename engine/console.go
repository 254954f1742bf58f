package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// console reads one answer per line from the player.
type console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newConsole(in io.Reader, out io.Writer) *console {
	return &console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// readInt returns io.EOF once the input is closed.
func (c *console) readInt() (int, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	return strconv.Atoi(strings.TrimSpace(c.scanner.Text()))
}

func (c *console) promptInt(prompt string) (int, error) {
	fmt.Fprint(c.out, prompt)
	return c.readInt()
}

func (c *console) pause() {
	fmt.Fprint(c.out, "\nPress ENTER to continue...")
	c.scanner.Scan()
}
