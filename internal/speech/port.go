package speech

import "context"

type STTClient interface {
	// Transcribe returns the text spoken in the audio file at filePath.
	Transcribe(ctx context.Context, filePath string) (string, error)
}

type TTSClient interface {
	// Synthesize returns MP3 audio of text spoken in language ("en", "ru", ...).
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}
