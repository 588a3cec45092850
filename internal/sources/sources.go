// Package sources maps notification origins to payment sources. The primary
// signal is the originating application identifier; when that is generic
// (a universal banking app) the notification text itself often names the
// payment brand and is the more reliable signal.
package sources

import (
	"strings"

	"fjacquet/paynotify/internal/models"
)

// brand associates a textual brand mention with a payment source. Entries
// are ordered from most to least specific because matching stops at the
// first hit.
type brand struct {
	term   string
	source models.PaymentSource
}

// Table resolves app identifiers and brand mentions to payment sources.
// A Table is read-only after construction and safe for concurrent use.
type Table struct {
	apps   map[string]models.PaymentSource
	brands []brand
}

// Default returns the built-in table covering the supported payment apps
// and their common brand spellings.
func Default() *Table {
	return &Table{
		apps: map[string]models.PaymentSource{
			"com.tencent.mm":              models.SourceWeChat,
			"com.eg.android.AlipayGphone": models.SourceAlipay,
			"com.unionpay":                models.SourceUnionPay,
			"cmb.pb":                      models.SourceCMB,
			"com.icbc":                    models.SourceICBC,
			"com.chinamworld.main":        models.SourceCCB,
			"com.android.bankabc":         models.SourceABC,
			"com.chinamworld.bocmbci":     models.SourceBOC,
		},
		brands: []brand{
			{"微信支付", models.SourceWeChat},
			{"微信", models.SourceWeChat},
			{"wechat", models.SourceWeChat},
			{"支付宝", models.SourceAlipay},
			{"alipay", models.SourceAlipay},
			{"云闪付", models.SourceUnionPay},
			{"银联", models.SourceUnionPay},
			{"unionpay", models.SourceUnionPay},
			{"招商银行", models.SourceCMB},
			{"cmb", models.SourceCMB},
			{"工商银行", models.SourceICBC},
			{"icbc", models.SourceICBC},
			{"建设银行", models.SourceCCB},
			{"ccb", models.SourceCCB},
			{"农业银行", models.SourceABC},
			{"中国银行", models.SourceBOC},
		},
	}
}

// NewTable builds a Table from an app-id mapping, keeping the default brand
// mentions. Used when the rule store overrides the app table.
func NewTable(apps map[string]models.PaymentSource) *Table {
	table := Default()
	if len(apps) > 0 {
		table.apps = apps
	}
	return table
}

// Classify maps an originating application identifier to its payment source.
// Unmapped identifiers yield SourceUnknown; such notifications are still
// parsed, since amount and merchant remain useful without a known source.
func (t *Table) Classify(appID string) models.PaymentSource {
	if source, ok := t.apps[appID]; ok {
		return source
	}
	return models.SourceUnknown
}

// FromText re-derives the payment source from a brand mention in the
// notification text. Used as a fallback when Classify returned SourceUnknown.
func (t *Table) FromText(text string) (models.PaymentSource, bool) {
	upper := strings.ToUpper(text)
	for _, b := range t.brands {
		if strings.Contains(upper, strings.ToUpper(b.term)) {
			return b.source, true
		}
	}
	return models.SourceUnknown, false
}

// KnownApps returns the configured app identifiers, for the rules listing
// command.
func (t *Table) KnownApps() map[string]models.PaymentSource {
	apps := make(map[string]models.PaymentSource, len(t.apps))
	for k, v := range t.apps {
		apps[k] = v
	}
	return apps
}
