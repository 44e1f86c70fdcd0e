package render

// Every value below is a synthetic placeholder. Nothing here may be read from
// the running process, its environment or its filesystem.

const normalPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Production App</title>
  <style>
    body { font-family: sans-serif; background: #0d1117; color: #f0f6fc; padding: 40px; }
    .container { max-width: 600px; margin: 0 auto; }
    h1 { color: #58a6ff; }
    .status { background: #238636; padding: 15px; border-radius: 8px; }
  </style>
</head>
<body>
  <div class="container">
    <h1>Welcome to Our App</h1>
    <div class="status">Production Mode - Everything is secure</div>
    <p>This is a normal production page with no sensitive information.</p>
  </div>
</body>
</html>`

const debugPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>DEBUG MODE ACTIVE</title>
  <style>
    body { font-family: monospace; background: #1a0000; color: #ff6b6b; padding: 40px; }
    .container { max-width: 800px; margin: 0 auto; }
    h1 { color: #ff0000; }
    .warning { background: #ff0000; color: white; padding: 15px; border-radius: 8px; font-weight: bold; }
    pre { background: #000; padding: 20px; border-radius: 8px; overflow-x: auto; }
    .section { margin: 20px 0; }
    .section-title { color: #ffaa00; font-weight: bold; }
  </style>
</head>
<body>
  <div class="container">
    <h1>DEBUG MODE ACTIVE</h1>
    <div class="warning">WARNING: Sensitive information exposed!</div>

    <div class="section">
      <div class="section-title">[Detected Debug Params]</div>
      <pre>{{.Params}}</pre>
    </div>

    <div class="section">
      <div class="section-title">[Detected Debug Headers]</div>
      <pre>{{.Headers}}</pre>
    </div>

    <div class="section">
      <div class="section-title">[Environment Variables]</div>
      <pre>
{{range .Environment}}{{.}}
{{end}}      </pre>
    </div>

    <div class="section">
      <div class="section-title">[Server Configuration]</div>
      <pre>
PHP Version: PHP/8.2.0
Server: Apache/2.4.52
Document Root: /var/www/html
Server User: www-data
Debug Mode: true
      </pre>
    </div>

    <div class="section">
      <div class="section-title">[Stack Trace]</div>
      <pre>
Fatal error: Uncaught Exception in /var/www/html/app/core.php:142
Stack trace:
#0 /var/www/html/app/core.php(142): Database->connect()
#1 /var/www/html/app/bootstrap.php(28): Application->init()
#2 /var/www/html/index.php(5): require_once('/var/www/html/...')
#3 {main}
      </pre>
    </div>
  </div>
</body>
</html>`

// debugEnvironment is printed line by line in the debug page's environment
// section.
var debugEnvironment = []string{
	"DB_HOST=localhost",
	"DB_NAME=production_db",
	"DB_PASSWORD=super_secret_password_123!",
	"API_KEY=sk-1234567890abcdef1234567890abcdef",
	"AWS_SECRET_ACCESS_KEY=wJalrXUtnFEMI/K7MDENG/bPxRfiCYEXAMPLEKEY",
	"SECRET_KEY=my-super-secret-application-key",
}
