package assets

import (
    "bytes"
    "embed"
    "image"
    _ "image/png" // Register PNG format

    "github.com/pkg/errors"
)

//go:embed images/*.png
var projectAssets embed.FS

// Window icons, smallest first. The OS picks the best fit.
var iconNames = []string{"icon_16.png", "icon_32.png"}

// LoadImage decodes an embedded PNG
func LoadImage(name string) (image.Image, error) {
    fileData, err := projectAssets.ReadFile("images/" + name)
    if err != nil {
        return nil, errors.Wrapf(err, "read image %q", name)
    }

    img, _, err := image.Decode(bytes.NewReader(fileData))
    if err != nil {
        return nil, errors.Wrapf(err, "decode image %q", name)
    }

    return img, nil
}

// WindowIcons loads every window icon size
func WindowIcons() ([]image.Image, error) {
    icons := make([]image.Image, 0, len(iconNames))
    for _, name := range iconNames {
        img, err := LoadImage(name)
        if err != nil {
            return nil, err
        }
        icons = append(icons, img)
    }
    return icons, nil
}
