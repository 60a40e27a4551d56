package notify

const otpEmailHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 20px;">
  <div style="max-width: 480px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
    <h2 style="color: #1a1a2e; margin-top: 0;">Verification Code</h2>
    <p>Hi {{.Username}},</p>
    <p>Use the following code to finish signing in:</p>
    <p style="font-size: 32px; font-weight: bold; letter-spacing: 8px; text-align: center; color: #1a1a2e;">{{.Code}}</p>
    <p>This code expires in {{.ValidityMinutes}} minutes. If you did not try to sign in, you can safely ignore this email.</p>
    <hr style="border: none; border-top: 1px solid #eee;">
    <p style="font-size: 12px; color: #888;">&copy; {{.Year}} Nativo English</p>
  </div>
</body>
</html>`

const resetEmailHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 20px;">
  <div style="max-width: 480px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
    <h2 style="color: #1a1a2e; margin-top: 0;">Password Reset</h2>
    <p>Hi {{.Username}},</p>
    <p>We received a request to reset your password. Use the token below with the update-password endpoint:</p>
    <p style="font-size: 14px; word-break: break-all; background: #f4f4f4; padding: 12px; border-radius: 4px;">{{.Token}}</p>
    <p>This token expires in {{.ValidityMinutes}} minutes. If you did not request a reset, you can safely ignore this email.</p>
    <hr style="border: none; border-top: 1px solid #eee;">
    <p style="font-size: 12px; color: #888;">&copy; {{.Year}} Nativo English</p>
  </div>
</body>
</html>`
