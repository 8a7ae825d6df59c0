package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/vtnds/ui/internal/markup"
)

const indeterminateOnceKey = "indeterminate-sync"

// indeterminateJS keeps the indeterminate property of live checkboxes in
// step with their data-indeterminate attribute. It runs on load, after htmx
// swaps and on every attribute change, and clears the state when the user
// toggles the control.
const indeterminateJS = `(function(){
if(window.vtndsIndeterminate){window.vtndsIndeterminate.scan(document);return;}
var sel='input[type=checkbox][data-indeterminate]';
function glyphs(el,on){var p=el.parentElement;if(!p)return;
var c=p.querySelector('[data-glyph=check]'),m=p.querySelector('[data-glyph=minus]');
if(c)c.classList.toggle('hidden',on);if(m)m.classList.toggle('hidden',!on);}
function apply(el){if(!el.matches||!el.matches(sel))return;
var on=el.getAttribute('data-indeterminate')==='true';el.indeterminate=on;glyphs(el,on);}
function scan(root){if(!root)return;apply(root);if(root.querySelectorAll)root.querySelectorAll(sel).forEach(apply);}
document.addEventListener('change',function(e){var el=e.target;
if(el&&el.matches&&el.matches(sel)&&el.getAttribute('data-indeterminate')==='true'){el.setAttribute('data-indeterminate','false');}},true);
new MutationObserver(function(ms){ms.forEach(function(r){
if(r.type==='attributes'){apply(r.target);return;}
r.addedNodes.forEach(function(n){if(n.nodeType===1)scan(n);});});
}).observe(document.documentElement,{subtree:true,childList:true,attributes:true,attributeFilter:['data-indeterminate']});
document.addEventListener('htmx:afterSwap',function(e){scan(e.target);});
window.vtndsIndeterminate={scan:scan};
scan(document);
if(document.readyState==='loading')document.addEventListener('DOMContentLoaded',function(){scan(document);});
})();`

// IndeterminateSync writes the script that applies the checkbox
// indeterminate state. Within a scope it renders at most once; layouts may
// place it in the document head so that checkboxes skip it.
func IndeterminateSync() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !claimOnce(ctx, indeterminateOnceKey) {
			return nil
		}
		m := markup.NewWriter(ctx, w)
		m.Open("script",
			markup.Opt("nonce", templ.GetNonce(ctx)),
			markup.A("data-vtnds", indeterminateOnceKey),
		)
		m.Raw(indeterminateJS)
		m.Close("script")
		return m.Err()
	})
}
