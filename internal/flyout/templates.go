package flyout

// widgetTemplate is the Go html/template for the flyout widget markup.
// The root class list is rendered from State so the first paint already
// reflects the initial collapsed-but-labeled state.
const widgetTemplate = `<div class="{{.Classes}}" id="docflyout">
  <div class="docflyout-header">
    <span class="docflyout-icon" title="Show / hide label">
      <svg width="16" height="16" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
        <path d="M4 19.5A2.5 2.5 0 0 1 6.5 17H20"/><path d="M6.5 2H20v20H6.5A2.5 2.5 0 0 1 4 19.5v-15A2.5 2.5 0 0 1 6.5 2z"/>
      </svg>
    </span>
    <span class="docflyout-label">{{.LanguageLabel}} / {{.VersionLabel}}</span>
  </div>
  <hr class="docflyout-divider">
  <div class="docflyout-content">
    <div class="docflyout-group">
      <span class="docflyout-group-title">Language</span>
      <select class="docflyout-select" data-axis="language">
        {{- range .Languages}}
        <option value="{{.Code}}"{{if .Selected}} selected{{end}}>{{.Name}}</option>
        {{- end}}
      </select>
    </div>
    <div class="docflyout-group">
      <span class="docflyout-group-title">Version</span>
      <select class="docflyout-select" data-axis="version">
        {{- range .Versions}}
        <option value="{{.Code}}"{{if .Selected}} selected{{end}}>{{.Name}}</option>
        {{- end}}
      </select>
    </div>
    {{- if .Projects}}
    <div class="docflyout-group">
      <span class="docflyout-group-title">Projects</span>
      <div class="docflyout-links">
        {{- range .Projects}}
        {{- if .Break}}<br>{{else}}<a href="{{.URL}}">{{.Label}}</a>{{end}}
        {{- end}}
      </div>
    </div>
    {{- end}}
  </div>
  <script type="application/json" class="docflyout-context">{{.ContextJSON}}</script>
</div>`

// baseCSS is the widget stylesheet. The strict variant is derived from
// it by qualifying every declaration with !important; see Strictify.
const baseCSS = `#docflyout {
  position: fixed;
  right: 16px;
  bottom: 16px;
  z-index: 9999;
  max-width: 280px;
  padding: 8px 12px;
  background: #263238;
  color: #eceff1;
  font-family: -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
  font-size: 13px;
  line-height: 1.5;
  border-radius: 6px;
  box-shadow: 0 2px 8px rgba(0, 0, 0, 0.35);
}
#docflyout .docflyout-header {
  display: flex;
  align-items: center;
  gap: 8px;
  cursor: pointer;
  user-select: none;
}
#docflyout .docflyout-icon {
  display: inline-flex;
  color: #80cbc4;
}
#docflyout .docflyout-label {
  font-weight: 600;
  white-space: nowrap;
}
#docflyout.icon-only .docflyout-label {
  display: none;
}
#docflyout .docflyout-divider {
  display: none;
  margin: 8px 0;
  border: 0;
  border-top: 1px solid #455a64;
}
#docflyout .docflyout-content {
  display: none;
}
#docflyout.expanded .docflyout-divider {
  display: block;
}
#docflyout.expanded .docflyout-content {
  display: block;
}
#docflyout .docflyout-group {
  margin-bottom: 8px;
}
#docflyout .docflyout-group-title {
  display: block;
  margin-bottom: 2px;
  color: #90a4ae;
  font-size: 11px;
  text-transform: uppercase;
  letter-spacing: 0.04em;
}
#docflyout .docflyout-select {
  width: 100%;
  padding: 2px 4px;
  background: #37474f;
  color: #eceff1;
  border: 1px solid #455a64;
  border-radius: 4px;
  font-size: 13px;
}
#docflyout .docflyout-links a {
  margin-right: 8px;
  color: #80cbc4;
  text-decoration: none;
}
#docflyout .docflyout-links a:hover {
  text-decoration: underline;
}`

// widgetScript is the browser-side behavior shipped as a static asset.
// It mirrors the resolution semantics of internal/nav: substitute the
// axis segment, short-circuit to file:// when opened from disk, HEAD
// probe the served URL, and fall back to <asset-dir>/<lang>/<version>/index.html.
const widgetScript = `(function () {
  'use strict';

  // Directory this script was loaded from; fallback URLs are rooted here.
  var assetDir = (function () {
    var script = document.currentScript;
    if (!script || !script.src) return '';
    return script.src.split('?')[0].replace(/\/[^\/]*$/, '');
  })();

  function init() {
    var root = document.getElementById('docflyout');
    if (!root) return;

    var ctxNode = root.querySelector('.docflyout-context');
    var ctx = { language: '', version: '' };
    try {
      ctx = JSON.parse(ctxNode.textContent);
    } catch (e) {
      // Malformed context leaves substitution a no-op.
    }

    var icon = root.querySelector('.docflyout-icon');
    var label = root.querySelector('.docflyout-label');

    // Two independent flags; hiding the label forces the panel closed.
    var state = { contentExpanded: false, labelVisible: true };

    function apply() {
      root.classList.toggle('expanded', state.contentExpanded);
      root.classList.toggle('icon-only', !state.labelVisible);
    }

    label.addEventListener('click', function (e) {
      e.stopPropagation();
      state.contentExpanded = !state.contentExpanded;
      apply();
    });

    icon.addEventListener('click', function (e) {
      e.stopPropagation();
      state.labelVisible = !state.labelVisible;
      if (!state.labelVisible) state.contentExpanded = false;
      apply();
    });

    // Widget-internal clicks must not reach the document-level collapse
    // handler below.
    root.addEventListener('click', function (e) {
      e.stopPropagation();
    });

    var onOutsideClick = function () {
      state.contentExpanded = false;
      apply();
    };
    document.addEventListener('click', onOutsideClick);

    function current(axis) {
      return axis === 'version' ? ctx.version : ctx.language;
    }

    function fallbackURL(axis, code) {
      var lang = ctx.language;
      var ver = ctx.version;
      if (axis === 'version') { ver = code; } else { lang = code; }
      return assetDir + '/' + lang + '/' + ver + '/index.html';
    }

    // Mirrors the server-side resolver: substitution miss keeps the
    // path, probe failure and non-2xx both take the fallback branch.
    function resolve(axis, code) {
      var path = window.location.pathname.replace('/' + current(axis) + '/', '/' + code + '/');

      if (window.location.protocol === 'file:') {
        return Promise.resolve('file://' + path);
      }

      var url = window.location.origin + path;
      return fetch(url, { method: 'HEAD' }).then(function (resp) {
        if (resp.ok) return url;
        console.warn('docflyout: probe ' + url + ': status ' + resp.status + ', using fallback');
        return fallbackURL(axis, code);
      }).catch(function (err) {
        console.warn('docflyout: probe ' + url + ': ' + err);
        return fallbackURL(axis, code);
      });
    }

    var selects = root.querySelectorAll('.docflyout-select');
    Array.prototype.forEach.call(selects, function (sel) {
      sel.addEventListener('change', function () {
        var axis = sel.getAttribute('data-axis');
        resolve(axis, sel.value).then(function (url) {
          window.location.href = url;
        });
      });
    });
  }

  if (document.readyState === 'loading') {
    document.addEventListener('DOMContentLoaded', init);
  } else {
    init();
  }
})();`
