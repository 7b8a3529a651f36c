package kasa

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/google/uuid"
)

// the first key of the XOR autokey cipher
const initialKey byte = 171

// Encrypt applies the Kasa XOR autokey cipher to a plaintext payload.
func Encrypt(plain []byte) []byte {
	key := initialKey
	out := make([]byte, len(plain))
	for i, b := range plain {
		key = key ^ b
		out[i] = key
	}
	return out
}

// Decrypt reverses Encrypt.
func Decrypt(cipher []byte) []byte {
	key := initialKey
	out := make([]byte, len(cipher))
	for i, b := range cipher {
		out[i] = key ^ b
		key = b
	}
	return out
}

// frame prefixes the encrypted payload with its big-endian length, as used on TCP
func frame(plain []byte) []byte {
	enc := Encrypt(plain)
	out := make([]byte, 4+len(enc))
	binary.BigEndian.PutUint32(out, uint32(len(enc)))
	copy(out[4:], enc)
	return out
}

// readFrame reads one length-prefixed message and returns the decrypted payload
func readFrame(r io.Reader) ([]byte, error) {
	header := make([]byte, 4)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("error reading response length: %w", err)
	}
	size := binary.BigEndian.Uint32(header)
	if size > maxResponseSize {
		return nil, fmt.Errorf("response too large (%d bytes)", size)
	}
	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}
	return Decrypt(body), nil
}

const maxResponseSize = 1 << 20

// every request made by this process carries the same source id
var source = uuid.NewString()

type requestContext struct {
	Source string `json:"source"`
}

// buildRequest marshals a command tree with the request context attached
func buildRequest(cmd map[string]any) ([]byte, error) {
	req := make(map[string]any, len(cmd)+1)
	for k, v := range cmd {
		req[k] = v
	}
	req["context"] = requestContext{Source: source}
	return json.Marshal(req)
}

type transport struct {
	dialer  net.Dialer
	timeout time.Duration
}

// roundTrip sends a single request over a new TCP connection and returns the
// decrypted response payload.
func (t *transport) roundTrip(ctx context.Context, addr string, payload []byte) ([]byte, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	conn, err := t.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if _, err := conn.Write(frame(payload)); err != nil {
		return nil, fmt.Errorf("error sending request to %s: %w", addr, err)
	}

	return readFrame(conn)
}
