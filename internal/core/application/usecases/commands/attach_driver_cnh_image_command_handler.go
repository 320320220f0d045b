package commands

import (
	"context"
	"errors"
	"fmt"

	"rental/internal/core/domain/model/driver"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/results"
)

// cnhImageExtensions lists the accepted license image formats.
var cnhImageExtensions = map[string]string{
	"image/png": "png",
	"image/bmp": "bmp",
}

// AttachDriverCnhImageCommandHandler handles license image uploads. The blob
// upload and the driver update run inside one unit of work, so a failed
// update never leaves an orphaned image URL on the driver.
type AttachDriverCnhImageCommandHandler struct {
	uowFactory DriverUoWFactory
	fileStore  ports.FileStore
}

// NewAttachDriverCnhImageCommandHandler creates a handler for license image
// uploads.
func NewAttachDriverCnhImageCommandHandler(
	uowFactory DriverUoWFactory,
	fileStore ports.FileStore,
) AttachDriverCnhImageCommandHandler {
	return AttachDriverCnhImageCommandHandler{
		uowFactory: uowFactory,
		fileStore:  fileStore,
	}
}

// Handle processes the image attachment command. Only PNG and BMP images are
// accepted; anything else is reported as InvalidCnhImage.
func (h *AttachDriverCnhImageCommandHandler) Handle(
	ctx context.Context,
	cmd AttachDriverCnhImageCommand,
) (results.ValueResult[*driver.DeliveryDriver], error) {
	var zero results.ValueResult[*driver.DeliveryDriver]

	if err := cmd.Validate(); err != nil {
		return zero, err
	}

	extension, supported := cnhImageExtensions[cmd.ContentType()]
	if !supported {
		return results.Failure[*driver.DeliveryDriver](
			results.NewError(results.InvalidCnhImage,
				fmt.Sprintf("unsupported image type %q", cmd.ContentType()))), nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DriverRepository()

	drv, err := repo.GetByCode(ctx, cmd.Code())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return results.FailureKind[*driver.DeliveryDriver](results.NotFound), nil
		}
		return zero, err
	}

	objectName := fmt.Sprintf("%s-cnh.%s", drv.Code().String(), extension)
	imageURL, err := h.fileStore.Upload(ctx, objectName, cmd.ContentType(), cmd.Image())
	if err != nil {
		return zero, err
	}

	attached := drv.WithCnhImage(imageURL.String())
	if attached.IsFailure() {
		return attached, nil
	}
	updated := attached.RequiredValue()

	if err = repo.UpdateCnhImageURL(ctx, updated.ID(), updated.CnhImageURL()); err != nil {
		return zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return zero, err
	}

	return attached, nil
}
