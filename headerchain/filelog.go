package headerchain

import (
	"encoding/binary"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/spvkit/core/header"
)

// maxRecordSize bounds the length prefix accepted on load. Every valid
// record carries an 80 byte header, anything larger is corruption.
const maxRecordSize = 1 << 20

// FileLog is a Log implementation storing headers in a single flat file of
// length-prefixed records:
//
//	record := length (4 bytes, little-endian) || serialized header
//
// The file is opened fresh for every Append and closed again before the
// call returns, so no handle outlives an operation.
type FileLog struct {
	Path string
}

// Load replays the log file front to back. A missing file is an empty log.
// End-of-file is only accepted exactly between records; a partial length
// prefix, a short payload or an undecodable payload fail with ErrCorruptLog.
func (l *FileLog) Load() ([]header.Header, error) {
	f, err := os.Open(l.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	headers := []header.Header{}
	lenBuf := make([]byte, 4)
	for {
		_, err := io.ReadFull(f, lenBuf)
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			log.WithField("path", l.Path).Error("Log ends inside a length prefix")
			return nil, ErrCorruptLog
		}
		if err != nil {
			return nil, err
		}
		n := binary.LittleEndian.Uint32(lenBuf)
		if n > maxRecordSize {
			log.WithField("path", l.Path).Errorf("Refusing oversized record of %d bytes", n)
			return nil, ErrCorruptLog
		}
		payload := make([]byte, n)
		if _, err := io.ReadFull(f, payload); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				log.WithField("path", l.Path).Error("Log ends inside a record payload")
				return nil, ErrCorruptLog
			}
			return nil, err
		}
		h := header.Header{}
		if err := h.Deserialize(payload); err != nil {
			log.WithField("path", l.Path).Error(err)
			return nil, ErrCorruptLog
		}
		headers = append(headers, h)
	}
	return headers, nil
}

// Append writes a single length-prefixed record to the end of the file,
// creating it when absent
func (l *FileLog) Append(h header.Header) error {
	f, err := os.OpenFile(l.Path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	payload := h.Serialize()
	lenBuf := make([]byte, 4)
	binary.LittleEndian.PutUint32(lenBuf, uint32(len(payload)))
	if _, err := f.Write(lenBuf); err != nil {
		return err
	}
	_, err = f.Write(payload)
	return err
}

// Close is a no-op, the file is never held open between operations
func (l *FileLog) Close() error {
	return nil
}
