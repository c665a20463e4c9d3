package service

import (
	"fmt"
	"strings"
)

type pageEntry struct {
	text string
	ts   int64
}

// achievementPage renders a trimmed-down Lodestone achievement page
func achievementPage(name, world string, entries ...pageEntry) string {
	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html><html lang="ja"><head><title>Lodestone</title></head><body>`)
	sb.WriteString(`<div class="frame__chara">`)
	fmt.Fprintf(&sb, `<p class="frame__chara__name">%s</p>`, name)
	fmt.Fprintf(&sb, `<p class="frame__chara__world"><i class="xiv-lds xiv-lds-home-world js__tooltip" data-tooltip="ホームワールド"></i>%s</p>`, world)
	sb.WriteString(`</div><ul class="ldst__achievement">`)
	for _, e := range entries {
		sb.WriteString(`<li class="entry"><div class="entry__achievement">`)
		fmt.Fprintf(&sb, `<div class="entry__activity"><p class="entry__activity__txt">%s</p>`, e.text)
		fmt.Fprintf(&sb, `<time class="entry__activity__time"><span id="datetime-%d">-</span><script>document.getElementById('datetime-%d').innerHTML = ldst_strftime(%d, 'YMD');</script></time>`, e.ts, e.ts, e.ts)
		sb.WriteString(`</div></div></li>`)
	}
	sb.WriteString(`</ul></body></html>`)
	return sb.String()
}
