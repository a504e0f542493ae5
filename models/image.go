package models

// ImageRef is an image field as it is stored on a content document.
type ImageRef struct {
	Type    string    `json:"_type,omitempty"`
	Asset   *AssetRef `json:"asset,omitempty"`
	Hotspot *Hotspot  `json:"hotspot,omitempty"`
	Alt     string    `json:"alt,omitempty"`
}

// AssetRef points at an uploaded asset. Ref holds the store's asset id
// (for example "image-Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000-jpg" or an object key);
// URL is only present when the query expanded the reference.
type AssetRef struct {
	Ref  string `json:"_ref,omitempty"`
	Type string `json:"_type,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Hotspot is the editor-selected focal area, in fractions of the image size.
type Hotspot struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
}

// IsZero reports whether the image carries no usable asset.
func (i *ImageRef) IsZero() bool {
	return i == nil || i.Asset == nil || (i.Asset.Ref == "" && i.Asset.URL == "")
}
