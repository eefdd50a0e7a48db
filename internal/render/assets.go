package render

// StyleCSS is served at /static/style.css.
const StyleCSS = `:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --error-bg: #fff5f5;
  --error-text: #c92a2a;
}

body.dark-mode {
  --bg: #1a1b26;
  --bg-secondary: #1f2030;
  --text: #c0caf5;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --error-bg: #2d1b1f;
  --error-text: #ff8787;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  background: var(--bg);
  color: var(--text);
  transition: background 0.2s, color 0.2s;
}

.site-header {
  display: flex;
  align-items: center;
  gap: 1.5rem;
  padding: 1rem 2rem;
  border-bottom: 1px solid var(--border);
  background: var(--bg-secondary);
}

.site-title { font-weight: 700; color: var(--text); text-decoration: none; }
nav { display: flex; gap: 1rem; flex: 1; }
nav a { color: var(--text-muted); text-decoration: none; }
nav a.active, nav a:hover { color: var(--accent); }

.theme-toggle {
  border: 1px solid var(--border);
  background: var(--bg);
  color: var(--text);
  border-radius: 6px;
  padding: 0.35rem 0.75rem;
  cursor: pointer;
}

main { max-width: 900px; margin: 0 auto; padding: 2rem; }

.cv-section h2 { border-bottom: 2px solid var(--accent); padding-bottom: 0.25rem; }
.timeline { border-left: 2px solid var(--border); margin-left: 0.5rem; }
.timeline-item { position: relative; padding: 0 0 1.5rem 1.5rem; }
.timeline-item::before {
  content: "";
  position: absolute;
  left: -7px;
  top: 0.35rem;
  width: 12px;
  height: 12px;
  border-radius: 50%;
  background: var(--border);
}
.timeline-date { font-size: 0.85rem; color: var(--text-muted); }
.timeline-date.current { color: var(--accent); font-weight: 600; }
.timeline-item:has(.timeline-date.current)::before { background: var(--accent); }
.timeline-title { margin: 0.25rem 0; }
.timeline-meta { color: var(--text-muted); font-size: 0.9rem; }
.timeline-concurrent {
  margin-top: 1rem;
  padding-left: 1rem;
  border-left: 2px dashed var(--border);
}
.concurrent-marker {
  font-size: 0.7rem;
  text-transform: uppercase;
  letter-spacing: 0.05em;
  color: var(--accent);
}

.photo-gallery { display: flex; align-items: center; gap: 0.5rem; }
.photo-strip {
  display: flex;
  gap: 0.75rem;
  overflow-x: auto;
  scroll-behavior: smooth;
  flex: 1;
}
.photo-strip img { height: 220px; border-radius: 6px; flex: none; }
.scroll-btn {
  border: 1px solid var(--border);
  background: var(--bg-secondary);
  color: var(--text);
  font-size: 1.5rem;
  border-radius: 50%;
  width: 2.5rem;
  height: 2.5rem;
  cursor: pointer;
}

.error-message {
  background: var(--error-bg);
  color: var(--error-text);
  border-radius: 6px;
  padding: 1rem;
}
`

// ScriptJS is served at /static/script.js. Each navigation aborts the
// previous fetch and only the newest generation may write to the page.
const ScriptJS = `(function () {
  'use strict';

  var DEFAULT_SCROLL_OFFSET = 300;
  var content = document.getElementById('content');
  var controller = null;
  var generation = 0;

  function setActive(pageId) {
    document.querySelectorAll('nav a[data-page]').forEach(function (a) {
      a.classList.toggle('active', a.getAttribute('data-page') === pageId);
    });
  }

  function showError(message) {
    var div = document.createElement('div');
    div.className = 'error-message';
    div.textContent = message;
    content.replaceChildren(div);
  }

  function loadPage(pageId) {
    if (controller) controller.abort();
    controller = new AbortController();
    var gen = ++generation;

    return fetch('/pages/' + encodeURIComponent(pageId) + '.html', { signal: controller.signal })
      .then(function (resp) {
        return resp.text().then(function (body) {
          if (!resp.ok) throw new Error(body.trim() || ('HTTP ' + resp.status));
          return body;
        });
      })
      .then(function (html) {
        if (gen !== generation) return;
        content.innerHTML = html;
        content.setAttribute('data-current-page', pageId);
        setActive(pageId);
        window.scrollTo({ top: 0, behavior: 'smooth' });
      })
      .catch(function (err) {
        if (err.name === 'AbortError' || gen !== generation) return;
        console.error('folio: loading page ' + pageId + ':', err);
        showError('Error loading page: ' + err.message);
      });
  }

  document.addEventListener('click', function (e) {
    var link = e.target.closest('a[data-page]');
    if (link) {
      e.preventDefault();
      var pageId = link.getAttribute('data-page');
      loadPage(pageId);
      history.pushState({ page: pageId }, '', link.getAttribute('href'));
      return;
    }
    var btn = e.target.closest('[data-scroll]');
    if (btn) {
      var gallery = btn.closest('.photo-gallery');
      var strip = document.getElementById('photo-strip');
      var offset = Number(gallery && gallery.getAttribute('data-scroll-offset')) || DEFAULT_SCROLL_OFFSET;
      if (strip) strip.scrollBy({ left: offset * Number(btn.getAttribute('data-scroll')), behavior: 'smooth' });
    }
  });

  window.addEventListener('popstate', function (e) {
    var pageId = (e.state && e.state.page) || content.getAttribute('data-initial-page');
    if (pageId) loadPage(pageId);
  });

  content.setAttribute('data-initial-page', content.getAttribute('data-current-page'));
  history.replaceState({ page: content.getAttribute('data-current-page') }, '', location.href);

  var toggle = document.getElementById('darkModeToggle');
  function applyDarkMode(enabled) {
    document.body.classList.toggle('dark-mode', enabled);
    toggle.textContent = enabled ? '☀️ Light' : '🌙 Dark';
  }
  function storedDarkMode() {
    var m = document.cookie.match(/(?:^|;\s*)darkMode=(enabled|disabled)/);
    return m ? m[1] : null;
  }
  function storeDarkMode(value) {
    document.cookie = 'darkMode=' + value + '; path=/; max-age=31536000; samesite=lax';
  }

  // Static hosts have no preference API, so the cookie is the source of truth there.
  var stored = storedDarkMode();
  if (stored && (stored === 'enabled') !== document.body.classList.contains('dark-mode')) {
    applyDarkMode(stored === 'enabled');
  }

  toggle.addEventListener('click', function () {
    var enabled = !document.body.classList.contains('dark-mode');
    var value = enabled ? 'enabled' : 'disabled';
    applyDarkMode(enabled);
    storeDarkMode(value);
    fetch('/api/preferences/dark-mode', {
      method: 'PUT',
      credentials: 'same-origin',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ darkMode: value })
    }).then(function (resp) {
      if (!resp.ok) throw new Error('HTTP ' + resp.status);
    }).catch(function (err) {
      console.error('folio: saving preference:', err);
    });
  });

  if (document.body.getAttribute('data-live-reload') === 'true' && window.WebSocket) {
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var ws = new WebSocket(proto + location.host + '/ws/reload');
    ws.onmessage = function (msg) {
      var ev = JSON.parse(msg.data);
      var current = content.getAttribute('data-current-page');
      if (ev.type === 'reload' && (!ev.page || ev.page === current)) loadPage(current);
    };
  }
})();
`
