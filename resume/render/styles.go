package render

import "html/template"

// Stylesheet is embedded in every rendered document. The print media rule
// drops the page margin and tightens section padding because the preview
// document is also the print source.
const Stylesheet template.CSS = `    :root { --ink:#0f172a; --muted:#64748b; --line:#e2e8f0; --pill:#eef2ff; --pill-ink:#3730a3; --accent:#4f46e5; }
    *{box-sizing:border-box}
    body{font-family:Inter,system-ui,-apple-system,Segoe UI,Roboto,Arial,sans-serif;margin:0;color:var(--ink);}
    .wrap{max-width:880px;margin:40px auto;padding:0 28px}
    header{display:flex;flex-wrap:wrap;align-items:flex-end;gap:16px 28px;border-bottom:2px solid var(--line);padding-bottom:16px}
    h1{font-size:34px;line-height:1.1;margin:0}
    h2{font-size:16px;color:var(--muted);font-weight:600;margin:0}
    .contact{margin-left:auto;display:flex;flex-direction:column;align-items:flex-end;font-size:13px;color:var(--muted)}
    .section{padding:20px 0;border-bottom:1px dashed var(--line)}
    .section > .title{font-size:12px;letter-spacing:.14em;text-transform:uppercase;color:var(--accent);font-weight:800;margin:0 0 8px}
    .row{display:flex;justify-content:space-between;gap:16px}
    .item h3{margin:0;font-size:16px}
    .sub{color:var(--muted);font-weight:500;margin-top:2px}
    .muted{color:var(--muted)}
    .bullets{padding-left:18px;margin:8px 0}
    .pill{display:inline-block;background:var(--pill);color:var(--pill-ink);padding:4px 10px;border-radius:999px;font-size:12px;margin:4px 6px 0 0}
    .grid{display:grid;grid-template-columns:repeat(2,minmax(0,1fr));gap:8px}
    .summary{white-space:pre-wrap}
    @media (max-width:720px){ .grid{grid-template-columns:1fr} .contact{align-items:flex-start} }
    @media print { .wrap{margin:0} header{border:none;padding-bottom:6px} .section{padding:12px 0;border-bottom:0} }`
