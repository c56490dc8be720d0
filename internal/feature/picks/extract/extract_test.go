package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleReport mirrors the shape the daily generator emits: a noisy
// preamble, one-line overview rows, then per-pick detail sections.
const sampleReport = `# 日经股票筛选报告（2025-06-02）

> **声明：非投资建议。以下为基于历史日线数据的技术面筛选与价位参考。**

## 如何阅读（快速）
- **Entry（买入）**：突破触发价位（近 20 日高点 + 少量 ATR 缓冲）。
- **Stop（止损）**：风险控制价位（Entry − 2.5×ATR）。

## 今日 Top10 概览（综合：动量/趋势/波动 + Brooks + AI）

下面是 Top10 的**一行摘要**（便于快速扫一遍）：

1. **7203** トヨタ自動車｜Entry **2800**｜Stop **2650**｜TP **3100**｜Score **0.412**
2. **9984**｜Entry **8500**｜Stop **8100**｜TP **9300**｜Score **0.388**｜Brooks **0.70**
3. **6758** ソニーグループ｜Entry **13200**｜Stop **12600**｜TP **14400**｜Score **0.351**｜Brooks **0.55**｜AI **0.80**

## 详细说明

### 1. 7203 — トヨタ自動車

**一句话结论：** 63日动量 +8.2%；收盘价高于 EMA50；20日波动率 1.35%。

| 指标 | 数值 |
|---|---:|
| 评分 | 0.4120 |
| 最新收盘价 | 2745.50 日元 |
| Entry（建议买入） | **2800.00** 日元 |

**推荐理由（按主题）**

- **动量**
  - 63日动量 +8.2%
  - 126日动量 +15.1%
- **趋势**
  - 收盘价高于 EMA50
- **波动/风险**
  - 20日波动率 1.35%
- 本节结尾有一条与技术面无关的备注。

### 2. 9984

| 最新收盘价 | 8420.00 日元 |

- 收盘价高于 EMA50

### 4. 4063 — 信越化学工業

| 最新收盘价 | 6100.00 日元 |

- 63日动量 +4.0%
`

func TestExtract_SampleReport(t *testing.T) {
	picks := New(nil).Extract(sampleReport)
	require.Len(t, picks, 4)

	// Rank order ascending.
	for i := 1; i < len(picks); i++ {
		assert.Less(t, picks[i-1].Rank, picks[i].Rank)
	}

	toyota := picks[0]
	assert.Equal(t, 1, toyota.Rank)
	assert.Equal(t, "7203", toyota.Code)
	assert.Equal(t, "トヨタ自動車", toyota.Name)
	require.NotNil(t, toyota.Entry)
	assert.Equal(t, 2800.0, *toyota.Entry)
	require.NotNil(t, toyota.Stop)
	assert.Equal(t, 2650.0, *toyota.Stop)
	require.NotNil(t, toyota.TakeProfit)
	assert.Equal(t, 3100.0, *toyota.TakeProfit)
	require.NotNil(t, toyota.Score)
	assert.Equal(t, 0.412, *toyota.Score)
	require.NotNil(t, toyota.Close)
	assert.Equal(t, 2745.50, *toyota.Close)
	// Topic bullets carry keyword text and count as rationale; the
	// unrelated closing remark does not.
	assert.Equal(t, []string{
		"**动量**",
		"63日动量 +8.2%",
		"126日动量 +15.1%",
		"**趋势**",
		"收盘价高于 EMA50",
		"**波动/风险**",
		"20日波动率 1.35%",
	}, toyota.Reasons)

	softbank := picks[1]
	assert.Equal(t, "9984", softbank.Code)
	assert.Equal(t, "", softbank.Name)
	require.NotNil(t, softbank.Close)
	assert.Equal(t, 8420.0, *softbank.Close)

	// Overview row with trailing Brooks and AI segments still parses.
	sony := picks[2]
	assert.Equal(t, 3, sony.Rank)
	assert.Equal(t, "6758", sony.Code)
	require.NotNil(t, sony.Score)
	assert.Equal(t, 0.351, *sony.Score)

	// Detail-only section becomes a pick seeded from its heading.
	shinetsu := picks[3]
	assert.Equal(t, 4, shinetsu.Rank)
	assert.Equal(t, "4063", shinetsu.Code)
	assert.Equal(t, "信越化学工業", shinetsu.Name)
	assert.Nil(t, shinetsu.Entry)
	require.NotNil(t, shinetsu.Close)
	assert.Equal(t, 6100.0, *shinetsu.Close)
	assert.Equal(t, []string{"63日动量 +4.0%"}, shinetsu.Reasons)
}

func TestExtract_EmptyAndNoise(t *testing.T) {
	e := New(nil)

	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("# 日经股票筛选报告\n\n（今日无符合过滤条件的标的。）\n"))
	// Prose that resembles but does not conform to the grammar.
	assert.Empty(t, e.Extract("1. **72** Entry 2800\n### 第一名 7203\n"))
}

func TestExtract_MalformedNumbersBecomeNil(t *testing.T) {
	text := "1. **7203**｜Entry **n/a**｜Stop **2650**｜TP **—**｜Score **0.412**\n"
	picks := New(nil).Extract(text)
	require.Len(t, picks, 1)

	p := picks[0]
	assert.Nil(t, p.Entry)
	require.NotNil(t, p.Stop)
	assert.Equal(t, 2650.0, *p.Stop)
	assert.Nil(t, p.TakeProfit)
	require.NotNil(t, p.Score)
}

func TestExtract_DuplicateOverviewLastWriteWins(t *testing.T) {
	text := "1. **7203** 旧名｜Entry **100**｜Stop **90**｜TP **120**｜Score **0.1**\n" +
		"2. **7203** 新名｜Entry **200**｜Stop **180**｜TP **240**｜Score **0.2**\n"
	picks := New(nil).Extract(text)
	require.Len(t, picks, 1)

	p := picks[0]
	assert.Equal(t, 2, p.Rank)
	assert.Equal(t, "新名", p.Name)
	assert.Equal(t, 200.0, *p.Entry)
	assert.Equal(t, 0.2, *p.Score)
}

func TestExtract_TruncatesToTopTen(t *testing.T) {
	// 14 distinct codes 1001..1014 with ranks 1..14.
	var b strings.Builder
	for i := 1; i <= 14; i++ {
		fmt.Fprintf(&b, "%d. **%d**｜Entry **100**｜Stop **90**｜TP **120**｜Score **0.5**\n", i, 1000+i)
	}

	picks := New(nil).Extract(b.String())
	require.Len(t, picks, 10)
	assert.Equal(t, 1, picks[0].Rank)
	assert.Equal(t, 10, picks[9].Rank)
}

func TestExtract_DetailAugmentsNeverReplaces(t *testing.T) {
	text := "1. **7203** 概览名｜Entry **2800**｜Stop **2650**｜TP **3100**｜Score **0.412**\n" +
		"\n" +
		"### 9. 7203 — 详情名\n" +
		"| 最新收盘价 | 2745.50 日元 |\n"
	picks := New(nil).Extract(text)
	require.Len(t, picks, 1)

	p := picks[0]
	// Rank and name from the overview survive the detail heading.
	assert.Equal(t, 1, p.Rank)
	assert.Equal(t, "概览名", p.Name)
	require.NotNil(t, p.Close)
	assert.Equal(t, 2745.5, *p.Close)
}

func TestExtract_BulletsOutsideSectionsIgnored(t *testing.T) {
	text := "- 63日动量 +8.2%\n" +
		"  - 收盘价高于 EMA50\n" +
		"1. **7203**｜Entry **2800**｜Stop **2650**｜TP **3100**｜Score **0.412**\n"
	picks := New(nil).Extract(text)
	require.Len(t, picks, 1)
	assert.Empty(t, picks[0].Reasons)
}

func TestExtract_CustomKeywords(t *testing.T) {
	text := "### 1. 7203\n" +
		"- RSI 超卖反弹\n" +
		"- 63日动量 +8.2%\n"

	narrow := New([]string{"RSI"}).Extract(text)
	require.Len(t, narrow, 1)
	assert.Equal(t, []string{"RSI 超卖反弹"}, narrow[0].Reasons)
}

func TestDefaultKeywords_CaseInsensitive(t *testing.T) {
	e := New(nil)
	assert.True(t, e.matchesKeyword("63D Momentum +8%"))
	assert.True(t, e.matchesKeyword("close above ema50"))
	assert.True(t, e.matchesKeyword("20日波动率 1.35%"))
	assert.False(t, e.matchesKeyword("出来高が増加"))
}

