// 文件: pkg/contract/side.go
// 持仓方向标签

package contract

// =============================================================================
// 持仓方向
// =============================================================================

// Side 持仓方向标签
//
// Long/Short 是唯一参与公式计算的方向。
// NoPos/Close 是调用方的簿记哨兵值（标记"无仓位"/"平仓中"），
// 任何按方向取值的公式都必须拒绝它们。
type Side int8

const (
	SideLong  Side = 1  // 多头
	SideShort Side = -1 // 空头

	SideNoPos Side = 0 // 无仓位 (调用方哨兵)
	SideClose Side = 2 // 平仓中 (调用方哨兵)
)

func (s Side) String() string {
	switch s {
	case SideLong:
		return "LONG"
	case SideShort:
		return "SHORT"
	case SideNoPos:
		return "NO_POS"
	case SideClose:
		return "CLOSE"
	}
	return "UNKNOWN"
}

// IsPosition 是否为真实持仓方向 (Long 或 Short)
func (s Side) IsPosition() bool {
	return s == SideLong || s == SideShort
}
