package components

import (
	"github.com/TheBitDrifter/signet"
	"github.com/TheBitDrifter/signet/persist"
	"gopkg.in/yaml.v3"
)

// Codecs returns the save decoders for this package's kinds. Positions go
// through NewPosition so a tampered save cannot smuggle in out-of-bounds
// coordinates.
func Codecs() persist.Codecs {
	return persist.Codecs{
		PositionName:   decodePosition,
		RenderableName: decodeRenderable,
	}
}

func decodePosition(kind signet.Kind, data *yaml.Node) (signet.Component, error) {
	var raw struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
	}
	if err := data.Decode(&raw); err != nil {
		return nil, err
	}
	return NewPosition(kind, raw.X, raw.Y)
}

func decodeRenderable(kind signet.Kind, data *yaml.Node) (signet.Component, error) {
	r := NewRenderable(kind, "", DefaultForeground)
	if err := data.Decode(r); err != nil {
		return nil, err
	}
	return r, nil
}
