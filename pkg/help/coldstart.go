package help

const ColdstartYAML = `# words-counter Quick Start

layout:
  upload_dir: "src/uploads (drop .txt files here)"
  counted_dir: "src/counted (a-g.txt, h-n.txt, o-u.txt, v-z.txt)"
  processed_inputs: "renamed from name.txt to name.counted"

buckets:
  a-g: "words starting with a..g"
  h-n: "words starting with h..n"
  o-u: "words starting with o..u"
  v-z: "everything else (v..z, digits, underscore, non-ASCII)"

bucket_file_format: |
  apple = 3
  banana = 1
  # sorted by word, one "word = count" per line, counts accumulate across runs

commands:
  watch: |
    words-counter run
  watch_every_minute: |
    words-counter run --interval 1m
  single_batch: |
    words-counter once
  show_bucket: |
    words-counter show a-g
  top_words: |
    words-counter top --n 20
  bucket_stats: |
    words-counter stats
  run_history: |
    words-counter history --limit 5
    words-counter history 12

config_keys:
  upload_dir: "directory scanned for new files"
  counted_dir: "directory holding the bucket files"
  interval: "delay between runs (Go duration, default 5s)"
  extensions: "plain text extensions to count (default [.txt])"
  html_extensions: "extensions extracted from HTML before counting"
  keep_empty_token: "count the empty word produced by leading punctuation"
  skip_malformed_lines: "drop bad bucket lines instead of failing the bucket"
  detect_language: "record the detected language of each file"
  store: "file (default) or sqlite"
  db_path: "SQLite run ledger (and sqlite store)"
  reports_dir: "write summary-<timestamp>.yaml after each run"

error_behavior:
  - "Unreadable input: file stays in the upload dir and is retried next run"
  - "Malformed bucket file: that bucket is skipped and left untouched"
  - "Some buckets failed: file is still renamed to avoid double counting"
  - "Exit codes (once): 0=all counted, 1=at least one file failed"
`
