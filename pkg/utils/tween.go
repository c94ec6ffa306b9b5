package utils

// Tween 显式插值驱动器
//
// 由宿主的 Update(deltaTime) 推进，不依赖任何隐式动画机制。
// 零值 Tween 视为已完成，Value() 返回 0。
type Tween struct {
	From     float64
	To       float64
	Duration float64 // 秒
	Easing   EasingFunc

	elapsed float64
	running bool
}

// NewTween 创建并启动一个插值
// duration <= 0 时立即完成，Value() 直接返回 to
func NewTween(from, to, duration float64, easing EasingFunc) *Tween {
	if easing == nil {
		easing = EaseLinear
	}
	return &Tween{
		From:     from,
		To:       to,
		Duration: duration,
		Easing:   easing,
		running:  duration > 0,
	}
}

// Update 推进 deltaTime 秒，返回本次推进后是否已完成
func (tw *Tween) Update(deltaTime float64) bool {
	if tw == nil || !tw.running {
		return true
	}
	tw.elapsed += deltaTime
	if tw.elapsed >= tw.Duration {
		tw.elapsed = tw.Duration
		tw.running = false
	}
	return !tw.running
}

// Progress 返回缓动后的进度 ∈ [0, 1]
func (tw *Tween) Progress() float64 {
	if tw == nil {
		return 1
	}
	if tw.Duration <= 0 {
		return 1
	}
	easing := tw.Easing
	if easing == nil {
		easing = EaseLinear
	}
	return easing(Clamp01(tw.elapsed / tw.Duration))
}

// Value 返回当前插值
func (tw *Tween) Value() float64 {
	if tw == nil {
		return 0
	}
	return Lerp(tw.From, tw.To, tw.Progress())
}

// Done 插值是否已结束（自然完成或被取消）
func (tw *Tween) Done() bool {
	return tw == nil || !tw.running
}

// Cancel 停止插值，Value() 停留在当前值
func (tw *Tween) Cancel() {
	if tw == nil || !tw.running {
		return
	}
	// 冻结当前值，后续 Update 不再推进
	current := tw.Value()
	tw.From, tw.To = current, current
	tw.running = false
}

// Retarget 从当前值出发重新指向新的目标值并重新计时
// 用于快速按下/松开时覆盖尚未完成的动画
func (tw *Tween) Retarget(to, duration float64) {
	if tw == nil {
		return
	}
	tw.From = tw.Value()
	tw.To = to
	tw.Duration = duration
	tw.elapsed = 0
	tw.running = duration > 0
}
