package siunitsmsgpack

import (
	"bytes"
	"errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// QuantityBuffer decodes a stream of msgpack encoded quantities that may
// arrive split across reads.
type QuantityBuffer struct {
	buf bytes.Buffer
}

// Feed appends data and returns every complete quantity now available.
// Trailing bytes of an incomplete value are kept for the next call. On a
// decode error the undecoded bytes are discarded so later data can be read.
func (qb *QuantityBuffer) Feed(data []byte) ([]*Quantity, error) {
	qb.buf.Write(data)

	var results []*Quantity
	for qb.buf.Len() > 0 {
		r := bytes.NewReader(qb.buf.Bytes())
		dec := msgpack.NewDecoder(r)
		v := new(Quantity)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				// not enough data yet, stop
				break
			}
			// the buffered bytes can never decode, drop them
			qb.buf.Reset()
			return results, err
		}
		qb.buf.Next(int(r.Size()) - r.Len())
		results = append(results, v)
	}
	return results, nil
}

// Pending returns the number of buffered bytes not yet decoded.
func (qb *QuantityBuffer) Pending() int { return qb.buf.Len() }
