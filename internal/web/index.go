package web

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>profitscan</title>
  <style>
    body { margin:0; font-family: monospace; background:#ffffff; color:#111111; }
    h1 { font-size:16px; padding:16px; border-bottom:1px solid #e0e0e0; margin:0; }
    table { border-collapse:collapse; width:100%; }
    th, td { text-align:left; padding:8px 16px; border-bottom:1px solid #f0f0f0; font-size:13px; }
    th { color:#4d4d4d; text-transform:uppercase; font-size:11px; }
    td.profit { font-weight:bold; }
  </style>
</head>
<body>
  <h1>profitscan &mdash; best single buy/sell per window</h1>
  <table>
    <thead>
      <tr>
        <th>Pair</th><th>Interval</th><th>Window</th><th>Max profit</th>
        <th>Last close</th><th>EMA20</th><th>RSI14</th><th>Scanned</th>
      </tr>
    </thead>
    <tbody id="reports"></tbody>
  </table>
  <script>
    const rows = new Map();
    const tbody = document.getElementById('reports');
    const source = new EventSource('/reports/stream');
    source.addEventListener('report', (e) => {
      const r = JSON.parse(e.data);
      let row = rows.get(r.pair);
      if (!row) {
        row = document.createElement('tr');
        rows.set(r.pair, row);
        tbody.appendChild(row);
      }
      row.innerHTML =
        '<td>' + r.pair + '</td>' +
        '<td>' + r.interval + '</td>' +
        '<td>' + r.window_size + '</td>' +
        '<td class="profit">' + r.max_profit + '</td>' +
        '<td>' + r.last_close + '</td>' +
        '<td>' + r.ema20 + '</td>' +
        '<td>' + r.rsi14 + '</td>' +
        '<td>' + new Date(r.scanned_at).toLocaleString() + '</td>';
    });
  </script>
</body>
</html>`
