// validate_factory 检查工厂配置文件并打印摘要
//
// 用法:
//
//	go run ./cmd/validate_factory -config data/factory.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/decker502/factorysim/pkg/config"
	"github.com/decker502/factorysim/pkg/layout"
)

var configPath = flag.String("config", config.DefaultFactoryConfigPath, "工厂配置文件路径")

func main() {
	flag.Parse()

	if err := validate(*configPath, os.Stdout); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
}

// validate 加载配置并写出摘要
//
// 以下情况返回错误：
//   - 大厅锚点不在院子内部（人员只有进入院子后才能垂直移动）
//   - 帧预算不足以让最远的人员到达
func validate(path string, out io.Writer) error {
	cfg, err := config.LoadFactoryConfig(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "✅ YAML 格式正确\n")

	l := layout.NewLayout(cfg)
	yard := l.Yard()
	fmt.Fprintf(out, "✅ 院子: %.1f x %.1f\n", yard.W, yard.H)
	for _, z := range l.Zones() {
		x, y := z.Anchor()
		if x <= yard.X+cfg.People.Speed || x >= yard.X+yard.W || y <= yard.Y || y >= yard.Y+yard.H {
			return fmt.Errorf("大厅 '%s' 锚点 (%.2f, %.2f) 不在院子内部", z.Name, x, y)
		}
	}
	fmt.Fprintf(out, "✅ 大厅数量: %d\n", len(cfg.Halls))
	for _, h := range cfg.Halls {
		fmt.Fprintf(out, "   - %s (%.1f, %.1f) %s\n", h.Name, h.Pos.X, h.Pos.Y, h.Color)
	}
	fmt.Fprintf(out, "✅ 人员数量: %d, 停车位: %d\n", cfg.People.Count, cfg.Parking.Count)

	need := worstCaseSteps(cfg)
	if need > cfg.Animation.Frames {
		return fmt.Errorf("帧预算不足: 需要约 %d 帧, 只有 %d 帧", need, cfg.Animation.Frames)
	}
	fmt.Fprintf(out, "✅ 帧预算: %d 帧 (最远人员约需 %d 帧)\n", cfg.Animation.Frames, need)
	return nil
}

// worstCaseSteps 估算所有人员到达所需的最大步数
//
// 院子外只走水平方向；进入院子后两轴同时移动，
// 所以总步数取决于剩余水平距离和垂直距离中较大的一个。
func worstCaseSteps(cfg *config.FactoryConfig) int {
	p := cfg.People
	outside := math.Ceil(-p.StartX / p.Speed)

	worst := 0.0
	for _, h := range cfg.Halls {
		inside := math.Max(h.Pos.X, 0) / p.Speed
		vertical := math.Max(math.Abs(h.Pos.Y-p.BandMin), math.Abs(h.Pos.Y-p.BandMax)) / p.Speed
		steps := outside + math.Ceil(math.Max(inside, vertical)) + 1
		worst = math.Max(worst, steps)
	}
	return int(worst)
}
