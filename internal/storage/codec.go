package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"
)

// Value header bytes. Drafts holding a full gallery of data-URL images run
// into megabytes, so large values are stored zstd-compressed.
const (
	encodingRaw  byte = 0x00
	encodingZstd byte = 0x01
)

// Compressing wraps a Store and compresses values at or above threshold
// bytes. Values are framed with a one-byte header either way. A value that
// starts with any other byte was written before compression was enabled
// and is returned as is.
type Compressing struct {
	next      Store
	threshold int
	enc       *zstd.Encoder
	dec       *zstd.Decoder
}

func NewCompressing(next Store, threshold int) (*Compressing, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}
	return &Compressing{next: next, threshold: threshold, enc: enc, dec: dec}, nil
}

func (c *Compressing) encode(value []byte) []byte {
	if c.threshold > 0 && len(value) >= c.threshold {
		out := make([]byte, 1, 1+len(value)/2)
		out[0] = encodingZstd
		return c.enc.EncodeAll(value, out)
	}
	out := make([]byte, 1+len(value))
	out[0] = encodingRaw
	copy(out[1:], value)
	return out
}

func (c *Compressing) decode(stored []byte) ([]byte, error) {
	if len(stored) == 0 {
		return stored, nil
	}
	switch stored[0] {
	case encodingRaw:
		return stored[1:], nil
	case encodingZstd:
		out, err := c.dec.DecodeAll(stored[1:], nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		return out, nil
	default:
		return stored, nil
	}
}

func (c *Compressing) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	stored, err := c.next.Get(ctx, namespace, key)
	if err != nil {
		return nil, err
	}
	return c.decode(stored)
}

func (c *Compressing) Set(ctx context.Context, namespace, key string, value []byte) error {
	return c.next.Set(ctx, namespace, key, c.encode(value))
}

func (c *Compressing) Delete(ctx context.Context, namespace string, keys ...string) error {
	return c.next.Delete(ctx, namespace, keys...)
}

func (c *Compressing) Touch(ctx context.Context, namespace string) error {
	if t, ok := c.next.(Toucher); ok {
		return t.Touch(ctx, namespace)
	}
	return nil
}

func (c *Compressing) EvictIdle(ctx context.Context, cutoff time.Time) (int, error) {
	if ev, ok := c.next.(Evictor); ok {
		return ev.EvictIdle(ctx, cutoff)
	}
	return 0, nil
}
