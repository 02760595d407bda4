package querykit

import (
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"regexp"
	"strings"
)

// ANSI renk kodları.
const (
	ansiReset     = "\033[0m"
	ansiKeyword   = "\033[1;94m"
	ansiSQL       = "\033[1;36m"
	ansiBindings  = "\033[1;33m"
	ansiRaw       = "\033[1;32m"
	ansiStats     = "\033[1;37m"
	ansiIndex     = "\033[0;32m"
	ansiType      = "\033[0;35m"
	ansiStatValue = "\033[0;36m"
	ansiStatCount = "\033[0;33m"
)

// keywordPattern, vurgulanan SQL anahtar kelimeleridir. Çok kelimeli ifadeler
// önce gelir ki "ORDER BY" tek parça eşleşsin.
var keywordPattern = regexp.MustCompile(`(?i)\b(GROUP BY|ORDER BY|SELECT|FROM|WHERE|JOIN|INNER|LEFT|RIGHT|OUTER|CROSS|HAVING|LIMIT|OFFSET|FETCH|NEXT|ROWS|ONLY|AND|OR|IN|NOT|IS|NULL|LIKE|BETWEEN|EXISTS|DISTINCT|COUNT|SUM|AVG|MIN|MAX|INSERT|INTO|VALUES|UPDATE|SET|DELETE|MERGE|USING|MATCHED|ON|CONFLICT|DO|NOTHING|DUPLICATE|KEY)\b`)

// Highlight, anahtar kelimeleri ANSI renkleriyle vurgular ve büyük harfe çevirir.
func Highlight(sql string) string {
	return keywordPattern.ReplaceAllStringFunc(sql, func(kw string) string {
		return ansiKeyword + strings.ToUpper(kw) + ansiReset
	})
}

// HighlightHTML, SQL'i HTML olarak kaçışlar ve anahtar kelimeleri span ile sarar.
func HighlightHTML(sql string) string {
	return keywordPattern.ReplaceAllStringFunc(html.EscapeString(sql), func(kw string) string {
		return `<span style="color: #ff79c6; font-weight: bold;">` + strings.ToUpper(kw) + `</span>`
	})
}

// Stats, builder durumunun özetini döndürür.
func (b *Builder) Stats() QueryStats {
	return QueryStats{
		Table:      b.table,
		Driver:     b.driver.String(),
		Bindings:   len(b.Bindings()),
		Joins:      len(b.joins),
		Conditions: len(b.conditions),
		Limit:      copyInt(b.limit),
		Offset:     copyInt(b.offset),
	}
}

// Log, SELECT ifadesini derler ve yapılandırılmış Logger'a iletir.
// Builder'ı değiştirmeden döndürür; zincirin ortasında kullanılabilir.
func (b *Builder) Log(ctx context.Context) *Builder {
	if b.logger == nil {
		return b
	}
	query, args, err := b.ToSQL()
	b.logger.Log(ctx, query, args, err)
	return b
}

// Dump, sorguyu, bağlamaları, ham SQL'i ve istatistikleri WithOutput ile verilen
// yazıcıya (varsayılan os.Stdout) yazar ve builder'ı değiştirmeden döndürür.
// Sorgu derlenemezse hata satırı aynı yazıcıya yazılır ve Logger'a iletilir.
//
//	q.Where("id", 1).Dump().Limit(1)
func (b *Builder) Dump() *Builder {
	w := b.output
	if w == nil {
		w = os.Stdout
	}
	if err := b.DumpTo(w); err != nil {
		fmt.Fprintf(w, "querykit: dump failed: %v\n", err)
		if b.logger != nil {
			b.logger.Log(context.Background(), "", nil, err)
		}
	}
	return b
}

// DumpTo, Dump çıktısını w'ye yazar. Renkler WithColor ile kapatılabilir.
func (b *Builder) DumpTo(w io.Writer) error {
	query, args, err := b.ToSQL()
	if err != nil {
		return err
	}
	layout := b.dateLayout()
	raw := interpolate(query, args, layout)

	paint := func(code, s string) string {
		if !b.color {
			return s
		}
		return code + s + ansiReset
	}
	highlight := func(s string) string {
		if !b.color {
			return s
		}
		return Highlight(s)
	}

	rule := strings.Repeat("=", 80)
	var out strings.Builder

	fmt.Fprintf(&out, "\n%s\nQuery Builder Dump\n%s\n\n", rule, rule)

	fmt.Fprintf(&out, "%s\n%s\n\n", paint(ansiSQL, "SQL:"), highlight(query))

	out.WriteString(paint(ansiBindings, "Bindings:") + "\n")
	if len(args) == 0 {
		out.WriteString("  (no bindings)\n")
	}
	for i, arg := range args {
		fmt.Fprintf(&out, "  %s %s %s\n",
			paint(ansiIndex, fmt.Sprintf("[%d]", i)),
			paint(ansiType, "("+typeName(arg)+")"),
			formatValue(arg, layout),
		)
	}
	out.WriteString("\n")

	fmt.Fprintf(&out, "%s\n%s\n\n", paint(ansiRaw, "Raw SQL:"), highlight(raw))

	stats := b.Stats()
	out.WriteString(paint(ansiStats, "Stats:") + "\n")
	fmt.Fprintf(&out, "  Table: %s\n", paint(ansiStatValue, stats.Table))
	fmt.Fprintf(&out, "  Driver: %s\n", paint(ansiStatValue, stats.Driver))
	fmt.Fprintf(&out, "  Bindings: %s\n", paint(ansiStatCount, fmt.Sprint(stats.Bindings)))
	fmt.Fprintf(&out, "  Joins: %s\n", paint(ansiStatCount, fmt.Sprint(stats.Joins)))
	fmt.Fprintf(&out, "  Conditions: %s\n", paint(ansiStatCount, fmt.Sprint(stats.Conditions)))
	if stats.Limit != nil {
		fmt.Fprintf(&out, "  Limit: %s\n", paint(ansiStatCount, fmt.Sprint(*stats.Limit)))
	}
	if stats.Offset != nil {
		fmt.Fprintf(&out, "  Offset: %s\n", paint(ansiStatCount, fmt.Sprint(*stats.Offset)))
	}
	fmt.Fprintf(&out, "%s\n\n", rule)

	_, err = io.WriteString(w, out.String())
	return err
}

// DumpHTML, Dump çıktısının HTML karşılığını w'ye yazar. Tüm değerler kaçışlanır.
func (b *Builder) DumpHTML(w io.Writer) error {
	query, args, err := b.ToSQL()
	if err != nil {
		return err
	}
	layout := b.dateLayout()
	raw := interpolate(query, args, layout)

	const pre = `<pre style="background: #282a36; padding: 10px; border-radius: 4px; margin: 5px 0; white-space: pre-wrap;">`

	var out strings.Builder
	out.WriteString(`<div style="background: #1e1e1e; color: #f8f8f2; font-family: monospace; font-size: 14px; padding: 20px; margin: 10px 0; border-radius: 8px; border-left: 4px solid #50fa7b;">`)
	out.WriteString(`<h3 style="margin: 0 0 20px 0; color: #50fa7b;">Query Builder Dump</h3>`)

	out.WriteString(`<div><strong style="color: #8be9fd;">SQL:</strong>` + pre + HighlightHTML(query) + `</pre></div>`)

	out.WriteString(`<div><strong style="color: #f1fa8c;">Bindings:</strong>`)
	if len(args) == 0 {
		out.WriteString(`<span style="color: #6272a4; font-style: italic;">(no bindings)</span>`)
	} else {
		out.WriteString(`<ul>`)
		for i, arg := range args {
			fmt.Fprintf(&out, `<li><span style="color: #50fa7b;">[%d]</span> <span style="color: #bd93f9;">(%s)</span> <span>%s</span></li>`,
				i, html.EscapeString(typeName(arg)), html.EscapeString(formatValue(arg, layout)))
		}
		out.WriteString(`</ul>`)
	}
	out.WriteString(`</div>`)

	out.WriteString(`<div><strong style="color: #50fa7b;">Raw SQL:</strong>` + pre + HighlightHTML(raw) + `</pre></div>`)

	stats := b.Stats()
	out.WriteString(`<div><strong style="color: #f8f8f2;">Stats:</strong><ul>`)
	fmt.Fprintf(&out, `<li>Table: %s</li><li>Driver: %s</li><li>Bindings: %d</li><li>Joins: %d</li><li>Conditions: %d</li>`,
		html.EscapeString(stats.Table), html.EscapeString(stats.Driver), stats.Bindings, stats.Joins, stats.Conditions)
	if stats.Limit != nil {
		fmt.Fprintf(&out, `<li>Limit: %d</li>`, *stats.Limit)
	}
	if stats.Offset != nil {
		fmt.Fprintf(&out, `<li>Offset: %d</li>`, *stats.Offset)
	}
	out.WriteString(`</ul></div></div>`)

	_, err = io.WriteString(w, out.String())
	return err
}
