package providers

import (
	"bufio"
	"io"
	"io/ioutil"
)

func flushResponse(resp io.ReadCloser) {
	io.Copy(ioutil.Discard, resp) // nolint: errcheck
	resp.Close()
}

func readResponse(resp io.Reader) ([]byte, error) {
	return ioutil.ReadAll(bufio.NewReader(resp))
}
