package software

import (
	"github.com/gogpu/cobra"
	"github.com/gogpu/cobra/renderer"
)

func init() {
	renderer.Register(Name, func(cfg cobra.RenderConfig) (renderer.Renderer, error) {
		r, err := NewLowRes(cfg)
		if err != nil {
			return nil, err
		}
		return r, nil
	})
}
