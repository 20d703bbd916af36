package game

import (
	"log"

	"github.com/decker502/factorysim/pkg/render"
)

// SceneManager controls which scene is active and owns the frame budget.
// Once the budget is spent Update is no longer forwarded, so the last frame
// stays on screen.
type SceneManager struct {
	currentScene Scene
	maxFrames    int
	frame        int
	initialized  bool
}

// NewSceneManager creates a SceneManager with the given frame budget.
// maxFrames <= 0 means no limit.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager(maxFrames int) *SceneManager {
	return &SceneManager{maxFrames: maxFrames}
}

// SwitchTo changes the active scene and restarts the frame counter.
// The new scene's Init runs on the next Step.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	sm.frame = 0
	sm.initialized = false
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Invalidate 标记静态层失效，下一次 Step 会重新调用 Init
// 不影响帧计数和场景状态
func (sm *SceneManager) Invalidate() {
	sm.initialized = false
}

// Step 执行一帧
//
// 参数:
//   - static: 静态层，首次调用（或 Invalidate 之后）时传给 Scene.Init
//   - deltaTime: 距上一帧的时间（秒）
//
// 返回:
//   - bool: 本次是否推进了一帧；没有场景或帧预算已用完时为 false
func (sm *SceneManager) Step(static render.Surface, deltaTime float64) bool {
	if sm.currentScene == nil {
		return false
	}

	if !sm.initialized {
		sm.currentScene.Init(static)
		sm.initialized = true
	}

	if sm.Finished() {
		return false
	}

	sm.currentScene.Update(deltaTime)
	sm.frame++

	if sm.Finished() {
		log.Printf("[SceneManager] 帧预算用完: %d 帧", sm.frame)
	}
	return true
}

// Draw renders the currently active scene to the provided surface.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(target render.Surface) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(target)
	}
}

// Frame 返回已推进的帧数
func (sm *SceneManager) Frame() int {
	return sm.frame
}

// MaxFrames 返回帧预算
func (sm *SceneManager) MaxFrames() int {
	return sm.maxFrames
}

// Finished 帧预算是否已用完
func (sm *SceneManager) Finished() bool {
	return sm.maxFrames > 0 && sm.frame >= sm.maxFrames
}
