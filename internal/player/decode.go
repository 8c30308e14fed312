package player

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extOGG  = ".ogg"
	extWAV  = ".wav"
)

// ErrUnsupportedFormat is returned for files the engine cannot decode.
var ErrUnsupportedFormat = errors.New("unsupported format")

// IsMusicFile returns true if the path has a supported audio extension.
func IsMusicFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extOGG, extWAV:
		return true
	}
	return false
}

// decodeFile opens and decodes path. The returned streamer owns the file.
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsMusicFile(path) {
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch ext {
	case extMP3:
		streamer, format, err = mp3.Decode(f)
	case extFLAC:
		// Some taggers prepend an ID3v2 block the FLAC decoder does not expect.
		if err = skipID3v2(f); err == nil {
			streamer, format, err = flac.Decode(f)
		}
	case extOGG:
		streamer, format, err = vorbis.Decode(f)
	case extWAV:
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, err
	}

	return &fileStreamer{StreamSeekCloser: streamer, file: f}, format, nil
}

type fileStreamer struct {
	beep.StreamSeekCloser
	file *os.File
}

// Close closes the decoder and the file. Decoders differ on whether they
// close their reader, so the second close error is ignored.
func (s *fileStreamer) Close() error {
	err := s.StreamSeekCloser.Close()
	_ = s.file.Close()
	return err
}

// ProbeDuration decodes the header of an audio file and returns its length.
func ProbeDuration(path string) (time.Duration, error) {
	streamer, format, err := decodeFile(path)
	if err != nil {
		return 0, err
	}
	defer streamer.Close()
	return format.SampleRate.D(streamer.Len()), nil
}

// skipID3v2 skips an ID3v2 tag at the start of r, if any.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// Syncsafe integer: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
