package commands

import (
	"errors"
	"io"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var (
	ErrAttachDriverCnhImageCommandIsNotConstructed = errors.New(
		"AttachDriverCnhImageCommand must be created via NewAttachDriverCnhImageCommand constructor",
	)
	ErrImageIsRequired = errors.New("image content is required")
)

// AttachDriverCnhImageCommand represents a request to attach a license image
// to a driver identified by their business code.
type AttachDriverCnhImageCommand struct {
	code        kernel.CodeId
	contentType string
	image       io.Reader

	guard guard.ConstructorGuard
}

// NewAttachDriverCnhImageCommand creates a command to attach a license image.
// The reader is consumed once by the handler during upload.
func NewAttachDriverCnhImageCommand(code, contentType string, image io.Reader) (AttachDriverCnhImageCommand, error) {
	if image == nil {
		return AttachDriverCnhImageCommand{}, ErrImageIsRequired
	}

	return AttachDriverCnhImageCommand{
		code:        kernel.NewCodeId(code),
		contentType: contentType,
		image:       image,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachDriverCnhImageCommand) Validate() error {
	return c.guard.Validate(ErrAttachDriverCnhImageCommandIsNotConstructed)
}

// Code returns the normalized business code from the command.
func (c AttachDriverCnhImageCommand) Code() kernel.CodeId {
	return c.code
}

// ContentType returns the MIME type of the image.
func (c AttachDriverCnhImageCommand) ContentType() string {
	return c.contentType
}

// Image returns the image content reader.
func (c AttachDriverCnhImageCommand) Image() io.Reader {
	return c.image
}
