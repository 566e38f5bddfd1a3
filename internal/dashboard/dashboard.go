package dashboard

// IndexPage returns the polling UI. All HTML is embedded, no external
// templates needed. The page re-fetches /api/events every 15 seconds.
func IndexPage() string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>GitHub Webhook Monitor</title>
	<style>
		body { font-family: system-ui, -apple-system, sans-serif; margin: 0; padding: 20px; background: #f5f5f5; color: #333; }
		.container { max-width: 800px; margin: 0 auto; }
		h1 { color: #333; }
		.card { background: white; padding: 14px 18px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); margin-bottom: 12px; }
		.error { background: #f8d7da; color: #721c24; }
		.empty { color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<h1>Repository Activity</h1>
		<div id="events"><p class="empty">Loading events...</p></div>
	</div>
	<script>
		async function refresh() {
			const el = document.getElementById('events');
			try {
				const res = await fetch('/api/events');
				if (!res.ok) throw new Error('server error ' + res.status);
				const events = await res.json();
				if (!events || events.length === 0) {
					el.innerHTML = '<p class="empty">No events yet.</p>';
					return;
				}
				el.innerHTML = events.map(e =>
					'<div class="card">' + escapeHtml(e.message) + '</div>'
				).join('');
			} catch (err) {
				el.innerHTML = '<div class="card error">Failed to load events: ' + escapeHtml(err.message) + '</div>';
			}
		}
		function escapeHtml(s) {
			const d = document.createElement('div');
			d.textContent = s;
			return d.innerHTML;
		}
		refresh();
		setInterval(refresh, 15000);
	</script>
</body>
</html>`
}
