package loclib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// ScanAddresses reads a log file line by line and collects a set of
// unique client addresses. A client address is a leading token of the
// line: everything before the first space or tab.
//
// Tokens which are not valid IPv4 or IPv6 addresses are reported to
// logger and skipped. A number of such tokens is returned as a second
// value.
func ScanAddresses(fs afero.Fs, path string, logger Logger) (*AddressSet, int, error) {
	file, err := fs.Open(path)

	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, 0, fmt.Errorf("cannot open %s: %w", path, ErrLogFileNotFound)
	case err != nil:
		return nil, 0, fmt.Errorf("cannot open %s: %w", path, err)
	}

	defer file.Close()

	rv := NewAddressSet()
	invalid := 0
	reader := bufio.NewReader(file)

	for lineNo := 1; ; lineNo++ {
		line, err := reader.ReadString('\n')

		switch {
		case errors.Is(err, io.EOF) && line == "":
			return rv, invalid, nil
		case err != nil && !errors.Is(err, io.EOF):
			return nil, 0, fmt.Errorf("cannot read line %d of %s: %w", lineNo, path, err)
		}

		token := leadingToken(line)

		if ip := net.ParseIP(token); ip != nil {
			rv.Add(token, ip)
		} else {
			invalid++

			logger.InvalidAddress(lineNo, token)
		}
	}
}

func leadingToken(line string) string {
	line = strings.TrimRight(line, "\r\n")

	if pos := strings.IndexAny(line, " \t"); pos >= 0 {
		return line[:pos]
	}

	return line
}
