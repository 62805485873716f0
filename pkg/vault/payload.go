package vault

import (
	"bytes"
	"strings"
)

// PayloadHeader is the first line of every plaintext payload.
const PayloadHeader = "# AES_VAULT (authenticated)\n"

const commentMarker = '#'

// EncodePayload serializes records into the plaintext payload: the header
// line followed by one separator-delimited line per record, in order.
//
// The returned buffer holds secrets; callers wipe it when done.
func EncodePayload(records []Record) []byte {
	size := len(PayloadHeader)
	for _, r := range records {
		size += r.lineLength() + 1
	}

	var buf bytes.Buffer
	buf.Grow(size)
	buf.WriteString(PayloadHeader)
	for _, r := range records {
		buf.WriteString(r.Service)
		buf.WriteByte(Separator)
		buf.WriteString(r.Username)
		buf.WriteByte(Separator)
		buf.WriteString(r.Password)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// DecodePayload parses a plaintext payload back into records.
//
// Empty lines and lines starting with '#' are ignored. Lines with fewer than
// three fields are dropped and counted in skipped rather than failing the
// whole parse; fields past the third are ignored.
func DecodePayload(data []byte) (records []Record, skipped int) {
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 || line[0] == commentMarker {
			continue
		}
		fields := strings.Split(string(line), string(Separator))
		if len(fields) < 3 {
			skipped++
			continue
		}
		records = append(records, Record{
			Service:  fields[0],
			Username: fields[1],
			Password: fields[2],
		})
	}
	return records, skipped
}
