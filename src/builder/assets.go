package builder

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"seedoc/src/common"
	"seedoc/src/config"
	"seedoc/src/site"
)

// AssetBuilder handles building icon and favicon assets
type AssetBuilder struct {
	cfg       *config.Config
	processor *common.ImageProcessor
}

// NewAssetBuilder creates a new asset builder
func NewAssetBuilder(cfg *config.Config) *AssetBuilder {
	return &AssetBuilder{
		cfg:       cfg,
		processor: common.NewImageProcessor(cfg),
	}
}

// Build regenerates all image assets and injects the favicon link into the HTML.
// The injection is not idempotent; repeated builds add repeated links.
func (b *AssetBuilder) Build() ([]string, error) {
	files, err := b.BuildImages()
	if err != nil {
		return nil, err
	}

	if err := b.InjectFavicon(); err != nil {
		return nil, err
	}

	return files, nil
}

// BuildImages regenerates every image asset and returns the written paths.
// Steps run in order and the first failure aborts the build.
func (b *AssetBuilder) BuildImages() ([]string, error) {
	result, err := b.processor.Enlarge()
	if err != nil {
		return nil, fmt.Errorf("failed to enlarge icon: %w", err)
	}
	files := []string{result.ContainerPath, result.PreviewPath}

	if _, err := b.processor.ConvertFavicon(); err != nil {
		return nil, fmt.Errorf("failed to convert favicon: %w", err)
	}
	files = append(files, b.cfg.Favicon.Output)

	icons := b.cfg.Images.Icons
	generated, err := common.GenerateIconSet(result.Image, b.cfg.IconSetDir(), icons.AppleTouchIconSizes, icons.AndroidIconSizes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate icon set: %w", err)
	}
	files = append(files, generated...)

	if b.cfg.Site.StaticDir != "" {
		if err := b.publish(files, b.cfg.Site.StaticDir); err != nil {
			return nil, fmt.Errorf("failed to publish assets: %w", err)
		}
	}

	log.Printf("✨ Built %d assets", len(files))
	return files, nil
}

// InjectFavicon adds the favicon link to the configured HTML file
func (b *AssetBuilder) InjectFavicon() error {
	h := b.cfg.HTML
	if err := site.InjectFavicon(h.Path, h.Href, h.Type); err != nil {
		return fmt.Errorf("failed to inject favicon: %w", err)
	}
	log.Printf("✅ Favicon added to %s", h.Path)
	return nil
}

// publish copies generated files flat into the static site directory
func (b *AssetBuilder) publish(files []string, staticDir string) error {
	if err := os.MkdirAll(staticDir, 0755); err != nil {
		return fmt.Errorf("failed to create static directory: %w", err)
	}

	for _, src := range files {
		dst := filepath.Join(staticDir, filepath.Base(src))
		if samePath(src, dst) {
			continue // already in place
		}
		if err := copyFile(src, dst, 0644); err != nil {
			return fmt.Errorf("failed to copy %s: %w", src, err)
		}
	}

	log.Printf("📋 Published %d files to %s", len(files), staticDir)
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

// copyFile copies a single file
func copyFile(src, dst string, mode os.FileMode) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		dstFile.Close()
		return err
	}
	return dstFile.Close()
}
