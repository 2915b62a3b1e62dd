// 文件: pkg/posmath/interpolate.go
// Lagrange 插值
//
// 调用方用它对小规模配置曲线做拟合查值。O(n²) 每次查询，
// n 是配置点个数 (个位数)，不值得上更复杂的算法。

package posmath

import "errors"

var (
	// ErrLengthMismatch xs 与 ys 长度不一致。
	// 这是调用方的编程错误，拒绝调用而不是静默截断。
	ErrLengthMismatch = errors.New("xs and ys must have the same length")
)

// Interpolate 在 (xs, ys) 定义的唯一 n-1 次多项式上求 x 处的值
//
// 前置条件: xs 各点互不相等，由调用方保证。
// 出现重复点时某一项除零，结果未定义 (NaN/Inf 原样传播)，
// 本函数不做内部防护。
func Interpolate(x float64, xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0.0, ErrLengthMismatch
	}

	result := 0.0
	for i := range xs {
		term := ys[i]
		for j := range xs {
			if i != j {
				term *= (x - xs[j]) / (xs[i] - xs[j])
			}
		}
		result += term
	}
	return result, nil
}
