package editor

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"

	"kizuna/internal/domain/draft"
	"kizuna/internal/domain/i18n"
	"kizuna/internal/domain/plan"
	"kizuna/internal/pkg/dataurl"
)

// Upload is one file of a multipart image upload.
type Upload struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

var allowedImageTypes = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/png":  imaging.PNG,
	"image/gif":  imaging.GIF,
	"image/webp": -1,
}

// UploadImages replaces the draft's images with the given files. Files
// past the plan's image limit are dropped and reported through the
// result's notice. The files are converted concurrently and the draft is
// written once, after every conversion has finished; a failed conversion
// writes nothing.
func (s *Service) UploadImages(ctx context.Context, store *draft.Store, lang i18n.Language, files []Upload) (UploadResult, error) {
	if len(files) == 0 {
		return UploadResult{}, ErrNoFiles
	}

	current, err := store.Load(ctx)
	if err != nil {
		return UploadResult{}, err
	}
	limit := plan.ImageLimit(current.Plan)
	accepted := files
	if len(accepted) > limit {
		accepted = accepted[:limit]
	}

	urls := make([]string, len(accepted))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range accepted {
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			u, err := s.convert(f)
			if err != nil {
				return fmt.Errorf("%s: %w", f.Filename, err)
			}
			urls[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return UploadResult{}, err
	}

	// The plan may have changed while converting.
	var kept int
	d, err := store.Mutate(ctx, func(d draft.CoupleDraft) (draft.Patch, error) {
		images := urls
		if l := plan.ImageLimit(d.Plan); len(images) > l {
			images = images[:l]
		}
		kept = len(images)
		return draft.Patch{Images: &images}, nil
	})
	if err != nil {
		return UploadResult{}, err
	}

	res := UploadResult{Draft: d, Kept: kept, Dropped: len(files) - kept}
	if res.Dropped > 0 {
		res.Notice = fmt.Sprintf(i18n.For(lang).UploadTrimmed, plan.ImageLimit(d.Plan))
		log.Printf("editor_upload_trimmed ns=%s plan=%s received=%d kept=%d", store.Namespace(), d.Plan, len(files), kept)
	}
	return res, nil
}

// convert turns one uploaded file into a data URL, downscaling images
// larger than the configured dimension.
func (s *Service) convert(f Upload) (string, error) {
	if s.opts.MaxUploadBytes > 0 && f.Size > s.opts.MaxUploadBytes {
		return "", ErrFileTooLarge
	}

	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	var r io.Reader = rc
	if s.opts.MaxUploadBytes > 0 {
		r = io.LimitReader(rc, s.opts.MaxUploadBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if s.opts.MaxUploadBytes > 0 && int64(len(data)) > s.opts.MaxUploadBytes {
		return "", ErrFileTooLarge
	}

	mime := mimetype.Detect(data)
	format, ok := allowedImageTypes[mime.String()]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, mime.String())
	}

	if s.opts.MaxImageDimension > 0 && format >= 0 && format != imaging.GIF {
		resized, changed, err := downscale(data, format, s.opts.MaxImageDimension)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
		}
		if changed {
			data = resized
		}
	}
	return dataurl.Encode(mime.String(), data), nil
}

func downscale(data []byte, format imaging.Format, maxDim int) ([]byte, bool, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, false, err
	}
	if cfg.Width <= maxDim && cfg.Height <= maxDim {
		return nil, false, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, false, err
	}
	img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(85)); err != nil {
		return nil, false, err
	}
	return buf.Bytes(), true, nil
}
