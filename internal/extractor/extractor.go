package extractor

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/trofimovm/summvideo/internal/tempstore"
)

var (
	// ErrDecode means the container could not be opened or has no audio track
	ErrDecode = errors.New("cannot decode video container")
	// ErrEncode means re-compression of the demuxed audio failed
	ErrEncode = errors.New("audio re-encoding failed")
)

// Extract demuxes the audio track of the video at videoPath into wavPath,
// then re-encodes it to a low-bitrate MP3 next to it and returns the MP3
// path. Both files are left on disk for the caller's scope to remove.
// A decode failure is not transient, so there is no retry here.
func (e *implExtractor) Extract(ctx context.Context, videoPath, wavPath string) (string, error) {
	e.logger.Info(ctx, "Extracting audio track: %s", videoPath)

	// Demux to 16kHz mono PCM, the format Whisper handles best
	demuxArgs := []string{
		"-i", videoPath,
		"-vn", // No video
		"-ar", strconv.Itoa(e.cfg.FFmpeg.SampleRate),
		"-ac", "1", // Mono
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}

	if _, err := e.executor.Execute(ctx, e.cfg.FFmpeg.BinaryPath, demuxArgs...); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	mp3Path := tempstore.CompressedPathFor(wavPath)
	e.logger.Info(ctx, "Compressing audio for upload: %s", mp3Path)

	// Low bitrate keeps the upload small; intelligibility matters here, not
	// listening quality
	encodeArgs := []string{
		"-i", wavPath,
		"-c:a", "libmp3lame",
		"-b:a", e.cfg.FFmpeg.AudioBitrate,
		"-y",
		mp3Path,
	}

	if _, err := e.executor.Execute(ctx, e.cfg.FFmpeg.BinaryPath, encodeArgs...); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}

	e.logger.Info(ctx, "Audio extracted successfully: %s", mp3Path)
	return mp3Path, nil
}
