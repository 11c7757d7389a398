package site

// reportTemplate is the html/template for report.html.
const reportTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <script src="https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js"></script>
  <style>
    :root, [data-theme="dark"] { --bg: #0d1117; --fg: #e6edf3; --muted: #8b949e; --border: #30363d; --card: #161b22; --accent: #58a6ff; }
    [data-theme="light"] { --bg: #ffffff; --fg: #1f2328; --muted: #656d76; --border: #d0d7de; --card: #f6f8fa; --accent: #0969da; }
    [data-theme="dracula"] { --bg: #282a36; --fg: #f8f8f2; --muted: #6272a4; --border: #44475a; --card: #343746; --accent: #bd93f9; }
    [data-theme="nord"] { --bg: #2e3440; --fg: #eceff4; --muted: #a3be8c; --border: #4c566a; --card: #3b4252; --accent: #88c0d0; }
    [data-theme="solarized"] { --bg: #002b36; --fg: #eee8d5; --muted: #93a1a1; --border: #073642; --card: #073642; --accent: #268bd2; }
    body { margin: 0; background: var(--bg); color: var(--fg); font: 14px/1.6 -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; }
    header { display: flex; gap: 16px; align-items: center; padding: 12px 24px; border-bottom: 1px solid var(--border); }
    header a { color: var(--accent); text-decoration: none; }
    #search-input { margin-left: auto; padding: 6px 10px; width: 280px; background: var(--card); color: var(--fg); border: 1px solid var(--border); border-radius: 6px; }
    #search-results { list-style: none; margin: 0; padding: 0 24px; }
    #search-results li { padding: 6px 0; border-bottom: 1px solid var(--border); }
    #search-results .summary { color: var(--muted); font-size: 12px; }
    main { max-width: 1100px; margin: 0 auto; padding: 24px; }
    a { color: var(--accent); }
    table { border-collapse: collapse; width: 100%; margin: 12px 0; }
    th, td { border: 1px solid var(--border); padding: 6px 10px; text-align: left; }
    th { background: var(--card); }
    code { background: var(--card); padding: 1px 4px; border-radius: 4px; }
    .mermaid { background: var(--card); border-radius: 8px; padding: 12px; }
  </style>
</head>
<body>
  <header>
    <strong>{{.Title}}</strong>
    <a href="index.html">Dashboard</a>
    <input type="text" id="search-input" placeholder="Search files, imports, exports..." autocomplete="off">
  </header>
  <ul id="search-results"></ul>
  <main>
{{.Content}}
  </main>
  <script>
  (function() {
    var theme = document.documentElement.getAttribute('data-theme');
    try { theme = localStorage.getItem('depviz-theme') || theme; } catch (err) {}
    document.documentElement.setAttribute('data-theme', theme);
    mermaid.initialize({startOnLoad: true, theme: theme === 'light' ? 'default' : 'dark'});

    var entries = [];
    fetch('search-index.json').then(function(r) { return r.json(); }).then(function(d) { entries = d; }).catch(function() {});
    var input = document.getElementById('search-input');
    var results = document.getElementById('search-results');
    input.addEventListener('input', function() {
      var q = input.value.toLowerCase();
      results.innerHTML = '';
      if (!q) return;
      entries.filter(function(e) {
        return e.path.toLowerCase().indexOf(q) >= 0 || e.content.toLowerCase().indexOf(q) >= 0;
      }).slice(0, 20).forEach(function(e) {
        var li = document.createElement('li');
        var a = document.createElement('a');
        a.href = e.link;
        a.textContent = e.path;
        var s = document.createElement('div');
        s.className = 'summary';
        s.textContent = e.summary;
        li.appendChild(a);
        li.appendChild(s);
        results.appendChild(li);
      });
    });
  })();
  </script>
</body>
</html>
`
