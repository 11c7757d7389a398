package dashboard

// cssContent is the dashboard stylesheet, one variable block per theme.
const cssContent = `
:root, [data-theme="dark"] {
  --bg: #0d1117; --surface: #161b22; --border: #30363d; --text: #e6edf3; --muted: #8b949e;
  --accent: #58a6ff; --green: #3fb950; --purple: #bc8cff; --blue: #58a6ff; --orange: #f0883e;
}
[data-theme="light"] {
  --bg: #ffffff; --surface: #f6f8fa; --border: #d0d7de; --text: #1f2328; --muted: #656d76;
  --accent: #0969da; --green: #1a7f37; --purple: #8250df; --blue: #0969da; --orange: #bc4c00;
}
[data-theme="dracula"] {
  --bg: #282a36; --surface: #343746; --border: #44475a; --text: #f8f8f2; --muted: #6272a4;
  --accent: #ff79c6; --green: #50fa7b; --purple: #bd93f9; --blue: #8be9fd; --orange: #ffb86c;
}
[data-theme="nord"] {
  --bg: #2e3440; --surface: #3b4252; --border: #4c566a; --text: #eceff4; --muted: #d8dee9;
  --accent: #88c0d0; --green: #a3be8c; --purple: #b48ead; --blue: #81a1c1; --orange: #d08770;
}
[data-theme="solarized"] {
  --bg: #002b36; --surface: #073642; --border: #586e75; --text: #eee8d5; --muted: #93a1a1;
  --accent: #268bd2; --green: #859900; --purple: #6c71c4; --blue: #268bd2; --orange: #cb4b16;
}

* { box-sizing: border-box; }
body { margin: 0; display: flex; min-height: 100vh; background: var(--bg); color: var(--text);
  font: 14px/1.5 -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif; }
a { color: var(--accent); text-decoration: none; }
a:hover { text-decoration: underline; }

.sidebar { width: 300px; flex-shrink: 0; height: 100vh; position: sticky; top: 0; overflow-y: auto;
  background: var(--surface); border-right: 1px solid var(--border); padding: 1rem; }
.project-title { margin: 0; font-size: 1.2rem; }
.root-path { color: var(--muted); font-size: 0.8rem; word-break: break-all; }
.side-section { margin-top: 1.25rem; }
.side-section h3 { margin: 0 0 0.5rem; font-size: 0.75rem; text-transform: uppercase; color: var(--muted); }
.stats div { font-size: 0.85rem; }
.bar { display: flex; height: 8px; border-radius: 4px; overflow: hidden; background: var(--border); }
.bar span { display: block; height: 100%; }
.bar-legend { display: flex; flex-wrap: wrap; gap: 0.5rem; margin-top: 0.35rem; font-size: 0.75rem; }
.top-list { list-style: none; margin: 0; padding: 0; font-size: 0.8rem; }
.top-list li { display: flex; justify-content: space-between; gap: 0.5rem; padding: 0.15rem 0; }
.top-list li span:first-child { overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
.ti-count { color: var(--muted); }

.file-tree { font-size: 0.8rem; }
.ft-dir, .ft-file { cursor: pointer; padding: 0.1rem 0.25rem; border-radius: 4px; white-space: nowrap; }
.ft-dir:hover, .ft-file:hover { background: var(--border); }
.ft-file.active { background: var(--accent); color: var(--bg); }
.ft-count { margin-left: 0.4rem; color: var(--muted); }
.ft-chevron { display: inline-block; width: 1em; transition: transform 0.15s; }
.ft-chevron.collapsed { transform: rotate(-90deg); }
.ft-children.collapsed { display: none; }

.content { flex: 1; min-width: 0; padding: 1rem; }
.toolbar { display: flex; flex-wrap: wrap; align-items: center; gap: 0.5rem; margin-bottom: 1rem; }
.toolbar input, .toolbar select, .toolbar button { background: var(--surface); color: var(--text);
  border: 1px solid var(--border); border-radius: 6px; padding: 0.35rem 0.6rem; font: inherit; }
#search { flex: 1; min-width: 200px; }
.view-btn.active, .filter-btn.active { border-color: var(--accent); }
.filter-btn:not(.active) { opacity: 0.5; }
.filter-btn.cat-stdlib { color: var(--green); }
.filter-btn.cat-internal { color: var(--purple); }
.filter-btn.cat-private { color: var(--blue); }
.filter-btn.cat-external { color: var(--orange); }
.result-count { color: var(--muted); font-size: 0.85rem; }
.menu-toggle { display: none; }

.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(340px, 1fr)); gap: 0.75rem; }
.card { background: var(--surface); border: 1px solid var(--border); border-radius: 8px; padding: 0.75rem; }
.card.highlighted { border-color: var(--accent); box-shadow: 0 0 0 1px var(--accent); }
.card.collapsed .card-section { display: none; }
.card.collapsed .collapse-btn { transform: rotate(-90deg); }
.card-header { display: flex; justify-content: space-between; align-items: center; cursor: pointer; gap: 0.5rem; }
.file-info { display: flex; align-items: center; gap: 0.4rem; min-width: 0; }
.file-info a { overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
.header-right { display: flex; align-items: center; gap: 0.4rem; }
.import-count { background: var(--border); border-radius: 10px; padding: 0 0.5rem; font-size: 0.75rem; }
.collapse-btn { background: none; border: none; color: var(--muted); cursor: pointer; }
.card-section { margin-top: 0.6rem; }
.card-section-label { font-size: 0.7rem; text-transform: uppercase; color: var(--muted); margin-bottom: 0.3rem; }
.tags, .export-row { display: flex; flex-wrap: wrap; gap: 0.3rem; }
.section-empty { color: var(--muted); font-size: 0.75rem; font-style: italic; }
.tag, .etag { position: relative; border-radius: 4px; padding: 0.05rem 0.4rem; font-size: 0.75rem; cursor: pointer;
  font-family: ui-monospace, SFMono-Regular, Menlo, monospace; border: 1px solid transparent; }
.tag-stdlib { color: var(--green); border-color: var(--green); }
.tag-internal { color: var(--purple); border-color: var(--purple); }
.tag-private { color: var(--blue); border-color: var(--blue); }
.tag-external { color: var(--orange); border-color: var(--orange); }
.tag.selected { background: var(--accent); color: var(--bg); }
.tag.match, .etag.match { outline: 1px solid var(--accent); }
.tag-detail, .etag-detail { display: none; position: absolute; left: 0; top: 100%; z-index: 5; margin-top: 2px;
  background: var(--bg); border: 1px solid var(--border); border-radius: 4px; padding: 0.3rem 0.5rem; white-space: nowrap; color: var(--text); }
.tag:hover .tag-detail, .etag:hover .etag-detail { display: block; }
.detail-kind { color: var(--muted); }
.etag { border-color: var(--border); }
.etag.private { opacity: 0.6; border-style: dashed; }
.ekind { margin-left: 0.3rem; color: var(--muted); font-size: 0.65rem; }
.no-results { color: var(--muted); text-align: center; padding: 3rem 0; }

.reverse-panel { display: none; background: var(--surface); border: 1px solid var(--accent); border-radius: 8px;
  padding: 0.75rem 1rem; margin-bottom: 1rem; position: relative; }
.reverse-panel.visible { display: block; }
.reverse-panel h3 { margin: 0; font-family: ui-monospace, monospace; }
.reverse-count { color: var(--muted); font-size: 0.85rem; }
#reverse-list { margin: 0.5rem 0 0; padding-left: 1.2rem; font-size: 0.85rem; }
.panel-close { position: absolute; top: 0.4rem; right: 0.5rem; background: none; border: none; color: var(--muted);
  font-size: 1.2rem; cursor: pointer; }

.code-panel { display: none; position: fixed; z-index: 20; width: 480px; max-height: 280px; overflow: auto;
  background: var(--surface); border: 1px solid var(--border); border-radius: 8px; box-shadow: 0 8px 24px rgba(0,0,0,0.4); }
.code-panel.visible { display: block; }
.code-header { display: flex; align-items: center; gap: 0.5rem; padding: 0.5rem 2rem 0.5rem 0.75rem;
  border-bottom: 1px solid var(--border); position: relative; }
.code-title { font-family: ui-monospace, monospace; font-weight: 600; }
.code-kind { color: var(--muted); font-size: 0.75rem; }
.code-copy { margin-left: auto; background: none; border: 1px solid var(--border); border-radius: 4px; color: var(--text); cursor: pointer; }
.code-body { margin: 0; padding: 0.75rem; font-size: 0.8rem; white-space: pre-wrap; }
.code-body .kw { color: var(--purple); }
.code-body .str { color: var(--green); }
.code-body .punct { color: var(--muted); }
.code-footer { display: flex; justify-content: space-between; padding: 0.4rem 0.75rem; border-top: 1px solid var(--border); font-size: 0.8rem; }
.code-usages { color: var(--accent); cursor: pointer; }

.sidebar-overlay { display: none; }
@media (max-width: 800px) {
  .menu-toggle { display: inline-block; }
  .sidebar { position: fixed; left: -320px; z-index: 30; transition: left 0.2s; }
  .sidebar.open { left: 0; }
  .sidebar-overlay.visible { display: block; position: fixed; inset: 0; z-index: 25; background: rgba(0,0,0,0.5); }
  .grid { grid-template-columns: 1fr; }
}
`

// jsContent forwards input events to the server and applies rendered
// fragments. The canonical state always comes back from the server.
const jsContent = `(function() {
  var body = document.body;
  var isStatic = body.dataset.static === 'true';
  var grid = document.getElementById('grid');
  var searchInput = document.getElementById('search');
  var sortSelect = document.getElementById('sort');
  var codePanel = document.getElementById('code-panel');
  var reversePanel = document.getElementById('reverse-panel');
  var selectedImport = body.dataset.rev || null;
  var rawSnippet = '';
  var ws = null;
  var debounceTimer;
  var ALL_CATS = 'external,internal,private,stdlib';

  function currentFragment() {
    var p = new URLSearchParams();
    if (searchInput.value) p.set('q', searchInput.value);
    var view = document.querySelector('.view-btn.active').dataset.view;
    if (view !== 'both') p.set('view', view);
    if (sortSelect.value !== 'name-asc') p.set('sort', sortSelect.value);
    var cats = [];
    document.querySelectorAll('.filter-btn.active').forEach(function(b) { cats.push(b.dataset.cat); });
    cats.sort();
    if (cats.join(',') !== ALL_CATS) p.set('cats', cats.join(','));
    if (selectedImport) p.set('rev', selectedImport);
    return p.toString();
  }

  function syncControls(fragment) {
    var p = new URLSearchParams(fragment);
    if (document.activeElement !== searchInput) searchInput.value = p.get('q') || '';
    var view = p.get('view') || 'both';
    document.querySelectorAll('.view-btn').forEach(function(b) { b.classList.toggle('active', b.dataset.view === view); });
    sortSelect.value = p.get('sort') || 'name-asc';
    var cats = p.has('cats') ? p.get('cats').split(',') : ALL_CATS.split(',');
    document.querySelectorAll('.filter-btn').forEach(function(b) { b.classList.toggle('active', cats.indexOf(b.dataset.cat) >= 0); });
    selectedImport = p.get('rev') || null;
  }

  function showReverse(rev) {
    if (!rev) { reversePanel.classList.remove('visible'); return; }
    document.getElementById('reverse-title').textContent = rev.title;
    document.getElementById('reverse-count').textContent = rev.countLabel;
    var list = document.getElementById('reverse-list');
    list.innerHTML = '';
    rev.files.forEach(function(f) {
      var li = document.createElement('li');
      var a = document.createElement('a');
      a.href = f.link;
      a.textContent = f.file;
      li.appendChild(a);
      list.appendChild(li);
    });
    reversePanel.classList.add('visible');
  }

  function apply(resp) {
    grid.innerHTML = resp.grid;
    document.getElementById('result-count').textContent = resp.resultCount;
    document.getElementById('no-results').style.display = resp.noResults ? 'block' : 'none';
    showReverse(resp.reverse);
    syncControls(resp.fragment);
    history.replaceState(null, '', resp.fragment ? '#' + resp.fragment : location.pathname);
  }

  function refresh(fragment) {
    if (isStatic) return;
    if (ws && ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify({type: 'view', fragment: fragment}));
      return;
    }
    fetch('/api/view?' + fragment).then(function(r) { return r.json(); }).then(apply).catch(function() {});
  }
  function render() { refresh(currentFragment()); }

  function connect() {
    if (isStatic || !window.WebSocket) return;
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    ws = new WebSocket(proto + location.host + '/ws/live?' + currentFragment());
    ws.onmessage = function(e) {
      var msg = JSON.parse(e.data);
      if (msg.type === 'view') apply(msg);
    };
    ws.onclose = function() { ws = null; };
  }

  document.querySelectorAll('.filter-btn').forEach(function(btn) {
    btn.addEventListener('click', function() { btn.classList.toggle('active'); render(); });
  });
  document.querySelectorAll('.view-btn').forEach(function(btn) {
    btn.addEventListener('click', function() {
      document.querySelectorAll('.view-btn').forEach(function(b) { b.classList.remove('active'); });
      btn.classList.add('active');
      render();
    });
  });
  sortSelect.addEventListener('change', render);

  searchInput.addEventListener('input', function() {
    if (ws && ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify({type: 'search', q: searchInput.value}));
      return;
    }
    clearTimeout(debounceTimer);
    debounceTimer = setTimeout(function() { selectedImport = null; render(); }, 150);
  });

  function selectImport(name) { selectedImport = name; render(); }

  document.getElementById('reverse-close').addEventListener('click', function() {
    selectedImport = null;
    codePanel.classList.remove('visible');
    render();
  });

  function showCode(file, importName, e) {
    if (isStatic) return;
    var q = new URLSearchParams({file: file, import: importName, x: e.clientX, y: e.clientY,
      vw: window.innerWidth, vh: window.innerHeight});
    fetch('/api/code?' + q.toString()).then(function(r) {
      if (!r.ok) { codePanel.classList.remove('visible'); return null; }
      return r.json();
    }).then(function(c) {
      if (!c) return;
      rawSnippet = c.snippet;
      document.getElementById('code-title').textContent = c.title;
      document.getElementById('code-kind').textContent = c.kind || '';
      document.getElementById('code-body').innerHTML = c.html;
      var link = document.getElementById('code-link');
      link.href = c.link;
      link.textContent = c.linkText;
      var usages = document.getElementById('code-usages');
      if (c.usages > 0) {
        usages.textContent = c.usageLabel;
        usages.onclick = function() { selectImport(importName); };
        usages.style.display = '';
      } else {
        usages.style.display = 'none';
      }
      codePanel.style.left = c.x + 'px';
      codePanel.style.top = c.y + 'px';
      codePanel.classList.add('visible');
    }).catch(function() { codePanel.classList.remove('visible'); });
  }

  document.getElementById('code-close').addEventListener('click', function() {
    codePanel.classList.remove('visible');
  });
  document.getElementById('code-copy').addEventListener('click', function() {
    var btn = this;
    if (!navigator.clipboard) return;
    navigator.clipboard.writeText(rawSnippet).then(function() {
      btn.textContent = '✓';
      setTimeout(function() { btn.textContent = '⎘'; }, 1500);
    }).catch(function() {});
  });

  function toggleCollapse(card) {
    card.classList.toggle('collapsed');
    var file = card.dataset.file;
    if (isStatic) return;
    if (ws && ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify({type: 'collapse', file: file}));
      return;
    }
    fetch('/api/collapse?file=' + encodeURIComponent(file), {method: 'POST'}).catch(function() {});
  }

  grid.addEventListener('click', function(e) {
    var tag = e.target.closest('.tag');
    if (tag) { showCode(tag.closest('.card').dataset.file, tag.dataset.import, e); return; }
    var etag = e.target.closest('.etag');
    if (etag) { window.open(etag.dataset.href, '_self'); return; }
    var header = e.target.closest('.card-header');
    if (header && !e.target.closest('a')) toggleCollapse(header.closest('.card'));
  });

  document.addEventListener('keydown', function(e) {
    if (e.key === 'Escape') {
      codePanel.classList.remove('visible');
      reversePanel.classList.remove('visible');
      selectedImport = null;
      render();
    }
    if (e.key === '/' && document.activeElement !== searchInput) {
      e.preventDefault();
      searchInput.focus();
    }
  });

  var tree = document.getElementById('file-tree');
  tree.addEventListener('click', function(e) {
    var dir = e.target.closest('.ft-dir');
    if (dir) {
      var children = dir.nextElementSibling;
      if (children && children.classList.contains('ft-children')) {
        children.classList.toggle('collapsed');
        dir.querySelector('.ft-chevron').classList.toggle('collapsed');
      }
      return;
    }
    var file = e.target.closest('.ft-file');
    if (!file) return;
    var card = null;
    grid.querySelectorAll('.card').forEach(function(c) { if (c.dataset.file === file.dataset.file) card = c; });
    if (card) {
      card.scrollIntoView({behavior: 'smooth', block: 'center'});
      card.classList.add('highlighted');
      setTimeout(function() { card.classList.remove('highlighted'); }, 1500);
    }
    tree.querySelectorAll('.ft-file').forEach(function(f) { f.classList.remove('active'); });
    file.classList.add('active');
  });

  var sidebar = document.getElementById('sidebar');
  var overlay = document.getElementById('sidebar-overlay');
  function toggleSidebar() { sidebar.classList.toggle('open'); overlay.classList.toggle('visible'); }
  document.getElementById('menu-toggle').addEventListener('click', toggleSidebar);
  overlay.addEventListener('click', toggleSidebar);

  var themeSelect = document.getElementById('theme-select');
  function applyTheme(theme) {
    document.documentElement.setAttribute('data-theme', theme);
    themeSelect.value = theme;
    try { localStorage.setItem('depviz-theme', theme); } catch (err) {}
  }
  themeSelect.addEventListener('change', function() {
    applyTheme(themeSelect.value);
    if (isStatic) return;
    fetch('/api/theme', {method: 'POST', body: new URLSearchParams({theme: themeSelect.value})}).catch(function() {});
  });
  if (isStatic) {
    var saved = null;
    try { saved = localStorage.getItem('depviz-theme'); } catch (err) {}
    if (saved) applyTheme(saved);
  }

  var hash = location.hash.slice(1);
  if (hash && hash !== body.dataset.fragment) {
    syncControls(hash);
    refresh(hash);
  } else if (body.dataset.fragment) {
    history.replaceState(null, '', '#' + body.dataset.fragment);
  }
  connect();
})();`
