package app

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/factorysim/pkg/game"
	"github.com/decker502/factorysim/pkg/render"
	"github.com/decker502/factorysim/pkg/render/terminal"
	"github.com/gdamore/tcell/v2"
)

// RunTerminal 在终端中运行动画，Esc、q 或 Ctrl-C 退出
func RunTerminal(cfg Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal screen: %w", err)
	}
	defer screen.Fini()

	s := newSession(cfg)
	d := newTerminalDriver(screen, s.sceneManager, s.bounds, s.deltaTime)
	d.run(s.interval())
	return nil
}

// terminalDriver 静态层 + 帧缓冲，按固定间隔刷新到 tcell 屏幕
type terminalDriver struct {
	screen       tcell.Screen
	sceneManager *game.SceneManager
	bounds       render.Bounds
	deltaTime    float64

	static *terminal.Grid
	frame  *terminal.Grid
}

func newTerminalDriver(screen tcell.Screen, sm *game.SceneManager, bounds render.Bounds, deltaTime float64) *terminalDriver {
	d := &terminalDriver{
		screen:       screen,
		sceneManager: sm,
		bounds:       bounds,
		deltaTime:    deltaTime,
	}
	d.resize()
	return d
}

// resize 按屏幕尺寸重建网格，静态层在下一帧重新绘制
func (d *terminalDriver) resize() {
	w, h := d.screen.Size()
	d.static = terminal.NewGrid(w, h, d.bounds)
	d.frame = terminal.NewGrid(w, h, d.bounds)
	d.sceneManager.Invalidate()
	log.Printf("[Terminal] 屏幕尺寸: %dx%d", w, h)
}

// tick 推进一帧并刷新屏幕；帧预算用完后继续显示最后一帧
func (d *terminalDriver) tick() {
	d.sceneManager.Step(d.static, d.deltaTime)
	d.frame.CopyFrom(d.static)
	d.sceneManager.Draw(d.frame)
	d.frame.Flush(d.screen)
}

// handleEvent 处理输入事件，返回 false 表示退出
func (d *terminalDriver) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			log.Printf("[Terminal] 用户退出")
			return false
		}
	case *tcell.EventResize:
		d.resize()
		d.screen.Sync()
	}
	return true
}

func (d *terminalDriver) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	quit := make(chan struct{})
	defer close(quit)

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	d.tick()
	for {
		select {
		case ev := <-eventChan:
			if !d.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			d.tick()
		}
	}
}
