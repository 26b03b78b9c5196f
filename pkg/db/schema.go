package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Runs: one row per processed batch
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at TIMESTAMP NOT NULL,
    finished_at TIMESTAMP,
    files_found INTEGER NOT NULL DEFAULT 0,
    success_count INTEGER DEFAULT 0,
    partial_count INTEGER DEFAULT 0,
    failed_count INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at DESC);

-- File results: per-input outcome within a run
CREATE TABLE IF NOT EXISTS file_results (
    result_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    file_name TEXT NOT NULL,
    status TEXT NOT NULL,          -- success, partial, failed
    error_type TEXT,
    error_message TEXT,
    token_count INTEGER DEFAULT 0,
    distinct_words INTEGER DEFAULT 0,
    language TEXT,
    content_hash TEXT,
    failed_buckets TEXT,           -- comma separated bucket names
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_file_results_run ON file_results(run_id);
CREATE INDEX IF NOT EXISTS idx_file_results_hash ON file_results(content_hash);

-- Buckets: marks buckets that have been written at least once
CREATE TABLE IF NOT EXISTS buckets (
    bucket TEXT PRIMARY KEY,
    updated_at TIMESTAMP NOT NULL
);

-- Bucket words: accumulated counts when the sqlite store is selected
CREATE TABLE IF NOT EXISTS bucket_words (
    bucket TEXT NOT NULL,
    word TEXT NOT NULL,
    count INTEGER NOT NULL CHECK (count >= 0),
    PRIMARY KEY (bucket, word),
    FOREIGN KEY (bucket) REFERENCES buckets(bucket) ON DELETE CASCADE
);
`
