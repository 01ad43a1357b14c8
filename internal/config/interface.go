package config

import (
	"context"
	"io"

	"github.com/specialistvlad/uaschema/internal/model"
)

// Decoder is the interface for a format-specific declaration reader.
type Decoder interface {
	// Extensions lists the file extensions (with dot) the decoder accepts.
	Extensions() []string

	// Decode turns the content of one declaration file into a Document. It
	// reports every problem in the file, not only the first one.
	Decode(ctx context.Context, path string, src []byte) (*Document, error)
}

// Encoder is the interface for a format-specific declaration writer. Its
// output must decode back into equivalent descriptors.
type Encoder interface {
	Encode(ctx context.Context, w io.Writer, descriptors []model.Descriptor) error
}
