package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/factorysim/pkg/app"
	"github.com/decker502/factorysim/pkg/config"
	"github.com/decker502/factorysim/pkg/embedded"
)

var (
	mode       = flag.String("mode", "window", "运行模式: window | terminal | headless")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "工厂配置文件路径（为空则使用内置配置）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	factory, err := loadFactoryConfig(*configPath)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	cfg := app.Config{
		Verbose: *verbose,
		Seed:    *seed,
		Factory: factory,
	}

	if err := run(*mode, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(mode string, cfg app.Config) error {
	switch mode {
	case "window":
		gameApp, err := app.NewApp(cfg)
		if err != nil {
			return fmt.Errorf("应用初始化失败: %w", err)
		}
		return gameApp.Run()
	case "terminal":
		return app.RunTerminal(cfg)
	case "headless":
		return app.RunHeadless(cfg, os.Stdout)
	default:
		return fmt.Errorf("unknown mode '%s' (window | terminal | headless)", mode)
	}
}

// loadFactoryConfig 优先读取 -config 指定的文件，否则使用嵌入的默认配置
func loadFactoryConfig(path string) (*config.FactoryConfig, error) {
	if path != "" {
		return config.LoadFactoryConfig(path)
	}
	data, err := embedded.ReadFile(config.DefaultFactoryConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseFactoryConfig(data)
}
