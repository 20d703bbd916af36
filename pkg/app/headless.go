package app

import (
	"fmt"
	"io"
	"log"

	"github.com/decker502/factorysim/pkg/render"
)

// RunHeadless 不打开任何显示，跑完整个帧预算
//
// 每帧向 out 写一行进度文本，格式为 "frame NNN: <进度>"。
//
// 返回:
//   - error: 写入 out 失败
func RunHeadless(cfg Config, out io.Writer) error {
	s := newSession(cfg)
	log.Printf("[Headless] 开始运行: %d 帧", s.sceneManager.MaxFrames())

	for s.sceneManager.Step(render.Discard, s.deltaTime) {
		progress := s.scene.Field().Progress()
		if _, err := fmt.Fprintf(out, "frame %3d: %s\n", s.sceneManager.Frame(), progress); err != nil {
			return fmt.Errorf("failed to write progress: %w", err)
		}
	}

	field := s.scene.Field()
	log.Printf("[Headless] 完成: %d/%d 人员已到达", field.ArrivedCount(), field.Len())
	return nil
}
