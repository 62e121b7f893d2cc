package report

// htmlTemplate is the benchmark report page.
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Name}} - Sort Benchmark Report</title>
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <style>
        :root {
            --bg-primary: #ffffff;
            --bg-secondary: #f8fafc;
            --text-primary: #1e293b;
            --text-secondary: #64748b;
            --border-color: #e2e8f0;
            --accent-success: #22c55e;
            --accent-error: #ef4444;
        }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background-color: var(--bg-secondary);
            color: var(--text-primary);
            margin: 0;
        }
        .container { max-width: 1200px; margin: 0 auto; padding: 2rem; }
        .status-passed { color: var(--accent-success); }
        .status-failed { color: var(--accent-error); }
        .muted { color: var(--text-secondary); }
        table { width: 100%; border-collapse: collapse; background: var(--bg-primary); }
        th, td { padding: 0.5rem 0.75rem; border-bottom: 1px solid var(--border-color); text-align: right; }
        th:nth-child(-n+2), td:nth-child(-n+2) { text-align: left; }
        .chart { background: var(--bg-primary); margin: 2rem 0; padding: 1rem; }
    </style>
</head>
<body>
<div class="container">
    <h1>{{.Name}}</h1>
    <p class="muted">Generated {{.Generated}}</p>
    {{if .Passed}}
    <h2 class="status-passed">Passed ✓</h2>
    {{else}}
    <h2 class="status-failed">Failed ✗</h2>
    {{end}}

    {{if .Failures}}
    <h3>Verification failures</h3>
    <ul>
        {{range .Failures}}<li>{{.}}</li>{{end}}
    </ul>
    {{end}}

    <div class="chart"><canvas id="comparisons"></canvas></div>

    <table>
        <thead>
            <tr>
                <th>Variant</th><th>Data</th><th>n</th><th>Comparisons</th><th>Swaps</th>
                <th>Shifts</th><th>Accesses</th><th>Mean (ms)</th>
            </tr>
        </thead>
        <tbody>
        {{range .Results}}
            <tr>
                <td>{{.Variant}}</td>
                <td>{{.DataType}}</td>
                <td>{{formatNumber (int64 .InputSize)}}</td>
                <td>{{formatNumber .Comparisons}}</td>
                <td>{{formatNumber .Swaps}}</td>
                <td>{{formatNumber .Shifts}}</td>
                <td>{{formatNumber .ArrayAccesses}}</td>
                <td>{{formatMillis .TimeMillis}}</td>
            </tr>
        {{end}}
        </tbody>
    </table>
</div>
<script>
    const series = {{.ChartJSON}};
    if (series.length > 0 && typeof Chart !== 'undefined') {
        const sizes = [...new Set(series.flatMap(s => s.sizes))].sort((a, b) => a - b);
        new Chart(document.getElementById('comparisons'), {
            type: 'line',
            data: {
                labels: sizes,
                datasets: series.map(s => ({
                    label: s.label,
                    data: sizes.map(n => {
                        const i = s.sizes.indexOf(n);
                        return i < 0 ? null : s.values[i];
                    }),
                })),
            },
            options: {
                scales: { y: { type: 'logarithmic', title: { display: true, text: 'comparisons' } } },
            },
        });
    }
</script>
</body>
</html>
`
