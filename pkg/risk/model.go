package risk

import "posmath.com/pkg/contract"

// Account 账户整体状态。
//
// 除了余额之外还带着累计盈亏序列的两个采样值:
// 历史最大值和最新值。风控引擎用它们反推权益峰值，
// 计算 auto-unstuck 亏损额度。序列本身由调用方维护，
// 本库不持有任何跨调用状态。
type Account struct {
	// Balance: 静态余额 (钱袋子里确定的钱)
	// 动态权益 Equity = Balance + uPnL，在输出里算
	Balance float64 `json:"balance"`

	// 累计已实现盈亏序列的 max-so-far 与最新值
	PnlCumsumMax  float64 `json:"pnl_cumsum_max"`
	PnlCumsumLast float64 `json:"pnl_cumsum_last"`

	// LossAllowancePct: unstuck 允许的峰值回撤比例 (如 0.01 = 1%)
	LossAllowancePct float64 `json:"loss_allowance_pct"`
}

// Position 表示一条仓位（单边）。
//
// 和带符号数量的表示不同，这里数量是无符号幅度，方向单独打标签:
// 调用方每个 symbol 最多各持一条多仓和一条空仓。
type Position struct {
	// Side: 方向标签，必须是 LONG 或 SHORT。
	// NO_POS/CLOSE 是调用方簿记用的哨兵，进引擎会被拒绝。
	Side contract.Side `json:"side"`

	// Size: 数量幅度 (>= 0)，0 表示该边无仓位
	Size float64 `json:"size"`

	// Price: 开仓均价。约定: Size 为 0 时 Price 也为 0，不是 NaN
	Price float64 `json:"price"`
}

// IsEmpty 该边是否无仓位
func (p *Position) IsEmpty() bool {
	return p.Size == 0
}

// RiskInput 是风控引擎的统一输入。
// 引擎本质就是: 输入 (账户+仓位+标记价+合约参数) → 输出 (敞口/盈亏/额度)。
type RiskInput struct {
	Account Account `json:"account"`

	// Params: 该 symbol 的交易所参数 (量化步长、合约乘数)
	Params contract.ExchangeParams `json:"params"`

	// Positions: 仓位列表，每个方向最多一条
	Positions []Position `json:"positions"`

	// MarkPrice: 标记价格，用于 uPnL 和敞口计算
	MarkPrice float64 `json:"mark_price"`
}

// SideMetrics 单边仓位的计算结果
type SideMetrics struct {
	// Notional: 名义成本 |size| * price * cMult
	Notional float64 `json:"notional"`

	// WalletExposure: 名义成本占余额比例
	WalletExposure float64 `json:"wallet_exposure"`

	// UnrealizedPnL: 按标记价的未实现盈亏
	UnrealizedPnL float64 `json:"unrealized_pnl"`

	// PriceDiff: 标记价相对开仓均价的带符号偏离 (正 = 亏损方向)
	PriceDiff float64 `json:"price_diff"`
}

// RiskOutput 是风控引擎的统一输出
type RiskOutput struct {
	Long  SideMetrics `json:"long"`
	Short SideMetrics `json:"short"`

	// TotalUPnL: 两边未实现盈亏之和
	TotalUPnL float64 `json:"total_upnl"`

	// Equity: 动态权益 = Balance + TotalUPnL
	Equity float64 `json:"equity"`

	// UnstuckAllowance: 当前时点允许的 unstuck 亏损额度
	UnstuckAllowance float64 `json:"unstuck_allowance"`
}
