package service

const digestEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin: 0; padding: 0; background: #0a0e17; font-family: 'Segoe UI', Arial, sans-serif;">
    <div style="max-width: 700px; margin: 0 auto; padding: 20px;">
        <div style="text-align: center; padding: 30px 0;">
            <h1 style="margin: 0; color: #3b82f6; font-size: 32px;">📈 StockPulse<span style="color: #8b5cf6;">AI</span></h1>
            <p style="color: #94a3b8; margin: 10px 0 0;">Your Daily Stock Intelligence Report</p>
            <p style="color: #64748b; font-size: 12px;">{{.LongDate}}</p>
        </div>
{{range .Cards}}
        <div style="background: #1a2235; border-radius: 12px; padding: 20px; margin-bottom: 20px; border: 1px solid rgba(255,255,255,0.1);">
            <table width="100%" style="margin-bottom: 15px;"><tr>
                <td>
                    <h2 style="margin: 0; color: #fff; font-size: 24px;">{{.Symbol}}</h2>
                    <p style="margin: 5px 0 0; color: #94a3b8; font-size: 14px;">Updated: {{$.ShortDate}}</p>
                </td>
                <td style="text-align: right;">
                    <div style="font-size: 28px; font-weight: bold; color: #fff;">${{printf "%.2f" .Price}}</div>
                    <div style="color: {{.ChangeColor}}; font-size: 16px;">{{.ChangeSign}}{{printf "%.2f" .Change}} ({{.ChangeSign}}{{printf "%.2f" .ChangePercent}}%)</div>
                </td>
            </tr></table>

            <table width="100%" cellspacing="10" style="margin-bottom: 15px;"><tr>
                <td style="background: #111827; padding: 12px; border-radius: 8px; text-align: center;">
                    <div style="color: #94a3b8; font-size: 12px;">Sentiment</div>
                    <div style="color: #10b981; font-size: 18px; font-weight: bold;">{{.Verdict.Sentiment.Label}}</div>
                    <div style="color: #64748b; font-size: 11px;">{{printf "%.0f" .Verdict.Sentiment.Confidence}}% confidence</div>
                </td>
                <td style="background: #111827; padding: 12px; border-radius: 8px; text-align: center;">
                    <div style="color: #94a3b8; font-size: 12px;">Technical</div>
                    <div style="color: #3b82f6; font-size: 18px; font-weight: bold;">{{.Verdict.Technical.Overall}}</div>
                    <div style="color: #64748b; font-size: 11px;">Score: {{printf "%.0f" .Verdict.Technical.Score}}</div>
                </td>
                <td style="background: #111827; padding: 12px; border-radius: 8px; text-align: center;">
                    <div style="color: #94a3b8; font-size: 12px;">7-Day Forecast</div>
                    <div style="color: {{.ForecastColor}}; font-size: 18px; font-weight: bold;">{{.ForecastArrow}} {{printf "%.1f" .Verdict.Prediction.Percent}}%</div>
                    <div style="color: #64748b; font-size: 11px;">{{printf "%.0f" .Verdict.Prediction.Confidence}}% confidence</div>
                </td>
                <td style="background: #111827; padding: 12px; border-radius: 8px; text-align: center;">
                    <div style="color: #94a3b8; font-size: 12px;">Rating</div>
                    <div style="color: {{.RatingColor}}; font-size: 16px; font-weight: bold;">{{.RatingLabel}}</div>
                    <div style="color: #64748b; font-size: 11px;">Score: {{printf "%.1f" .Verdict.Recommendation.Score}}/10</div>
                </td>
            </tr></table>

            <div style="background: #111827; padding: 15px; border-radius: 8px;">
                <p style="margin: 0; color: #e2e8f0; font-size: 14px; line-height: 1.6;">
                    <strong style="color: #3b82f6;">AI Summary:</strong> {{.Verdict.Summary}}
                </p>
            </div>
        </div>
{{end}}
        <div style="text-align: center; padding: 30px 0; border-top: 1px solid rgba(255,255,255,0.1); margin-top: 30px;">
            <p style="color: #64748b; font-size: 12px; margin-bottom: 15px;">⚠️ This is for educational purposes only. Not financial advice.</p>
            <p style="color: #64748b; font-size: 12px;"><a href="{{.UnsubscribeURL}}" style="color: #3b82f6;">Unsubscribe</a></p>
            <p style="color: #4b5563; font-size: 11px; margin-top: 15px;">© {{.Year}} StockPulse AI</p>
        </div>
    </div>
</body>
</html>
`
