// Package app 提供工厂动画的运行驱动
//
// 窗口驱动通过 Ebitengine 实现 ebiten.Game，终端驱动使用 tcell，
// 无界面驱动只输出进度文本。三种驱动共用同一个场景和帧预算。
package app

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/factorysim/pkg/render"
	"github.com/decker502/factorysim/pkg/render/canvas"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var backgroundColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// App 是窗口模式的核心包装器，实现 ebiten.Game 接口
type App struct {
	session  *session
	fonts    *canvas.Fonts
	viewport render.Viewport
	width    int
	height   int

	// background 静态层，只在初始化时绘制一次
	background *ebiten.Image
}

// NewApp 创建并初始化窗口应用
//
// 调用此函数前，必须先加载并验证工厂配置。
func NewApp(cfg Config) (*App, error) {
	s := newSession(cfg)

	fonts, err := canvas.LoadFonts()
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	w, h := s.cfg.Window.Width, s.cfg.Window.Height
	log.Printf("[App] 窗口尺寸: %dx%d, 帧间隔: %dms, 帧数: %d",
		w, h, s.cfg.Animation.IntervalMs, s.cfg.Animation.Frames)

	return &App{
		session:  s,
		fonts:    fonts,
		viewport: canvas.NewViewport(s.bounds, w, h),
		width:    w,
		height:   h,
	}, nil
}

// Run 设置窗口属性并启动游戏循环，窗口关闭或按 Esc 后返回
func (a *App) Run() error {
	ebiten.SetWindowSize(a.width, a.height)
	ebiten.SetWindowTitle(a.session.cfg.Window.Title)
	// 每个 tick 对应一帧动画
	ebiten.SetTPS(max(1, 1000/a.session.cfg.Animation.IntervalMs))

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}

// Update 推进一帧动画
// 每个 tick 调用一次
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[App] Esc pressed, terminating")
		return ebiten.Termination
	}

	var static render.Surface = render.Discard
	if a.background == nil {
		a.background = ebiten.NewImage(a.width, a.height)
		a.background.Fill(backgroundColor)
		static = canvas.NewSurface(a.background, a.viewport, a.fonts)
	}

	a.session.sceneManager.Step(static, a.session.deltaTime)
	return nil
}

// Draw 绘制静态层和当前帧
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if a.background != nil {
		screen.DrawImage(a.background, nil)
	}
	a.session.sceneManager.Draw(canvas.NewSurface(screen, a.viewport, a.fonts))
}

// Layout 返回固定的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
