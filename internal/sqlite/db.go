package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema. Idempotent setup is the caller's
// concern; this is intended for fresh databases and tests.
func (db *DB) RunMigrations() error {
	migration := `
-- Projects table
CREATE TABLE projects (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT,
    address TEXT,
    status TEXT NOT NULL CHECK(status IN ('active', 'on_hold', 'completed', 'archived')),
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX idx_tenant_projects ON projects(tenant_id);

-- Per-project workflow-type numbering schemes
CREATE TABLE workflow_types (
    tenant_id TEXT NOT NULL,
    project_id TEXT NOT NULL,
    key TEXT NOT NULL,
    prefix TEXT NOT NULL,
    next_number INTEGER NOT NULL DEFAULT 1,
    PRIMARY KEY (project_id, key),
    FOREIGN KEY (project_id) REFERENCES projects(id)
);

-- RFIs table
CREATE TABLE rfis (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    project_id TEXT NOT NULL,
    number INTEGER NOT NULL CHECK(number >= 1),
    title TEXT NOT NULL,
    description TEXT,
    reference_number TEXT,
    status TEXT NOT NULL CHECK(status IN ('draft', 'submitted', 'answered', 'approved', 'rejected', 'closed')),
    priority TEXT NOT NULL DEFAULT 'normal' CHECK(priority IN ('low', 'normal', 'high')),
    due_date TIMESTAMP,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    modified_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (project_id, number),
    FOREIGN KEY (project_id) REFERENCES projects(id)
);
CREATE INDEX idx_tenant_rfis ON rfis(tenant_id);
CREATE INDEX idx_project_rfis ON rfis(project_id);
CREATE INDEX idx_rfi_status ON rfis(status);

-- Daily site reports, one per project per calendar day
CREATE TABLE daily_reports (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    project_id TEXT NOT NULL,
    report_date TIMESTAMP NOT NULL,
    weather TEXT,
    temperature_c REAL,
    workforce_count INTEGER NOT NULL DEFAULT 0,
    work_performed TEXT NOT NULL,
    delays TEXT,
    safety_incidents TEXT,
    notes TEXT,
    created_by TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    modified_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (project_id, report_date),
    FOREIGN KEY (project_id) REFERENCES projects(id)
);
CREATE INDEX idx_tenant_daily_reports ON daily_reports(tenant_id);
CREATE INDEX idx_project_daily_reports ON daily_reports(project_id, report_date);

-- Punch-list items
CREATE TABLE punch_items (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    project_id TEXT NOT NULL,
    number INTEGER NOT NULL CHECK(number >= 1),
    title TEXT NOT NULL,
    description TEXT,
    location TEXT,
    trade TEXT,
    status TEXT NOT NULL CHECK(status IN ('open', 'in_progress', 'ready_for_review', 'resolved', 'rejected')),
    priority TEXT NOT NULL DEFAULT 'normal' CHECK(priority IN ('low', 'normal', 'high')),
    assignee_id TEXT,
    due_date TIMESTAMP,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    modified_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (project_id, number),
    FOREIGN KEY (project_id) REFERENCES projects(id)
);
CREATE INDEX idx_tenant_punch_items ON punch_items(tenant_id);
CREATE INDEX idx_project_punch_items ON punch_items(project_id);

-- Roles and the permission matrix
CREATE TABLE roles (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    name TEXT NOT NULL,
    builtin INTEGER NOT NULL DEFAULT 0,
    UNIQUE (tenant_id, name)
);

CREATE TABLE role_permissions (
    role_id TEXT NOT NULL,
    permission TEXT NOT NULL,
    PRIMARY KEY (role_id, permission),
    FOREIGN KEY (role_id) REFERENCES roles(id)
);

-- Users
CREATE TABLE users (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    email TEXT NOT NULL,
    display_name TEXT,
    role_id TEXT NOT NULL,
    active INTEGER NOT NULL DEFAULT 1,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (tenant_id, email),
    FOREIGN KEY (role_id) REFERENCES roles(id)
);
CREATE INDEX idx_tenant_users ON users(tenant_id);

-- Notification feed
CREATE TABLE notifications (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    tenant_id TEXT NOT NULL,
    project_id TEXT NOT NULL,
    user_id TEXT,
    kind TEXT NOT NULL,
    summary TEXT NOT NULL,
    ref_id TEXT,
    read INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX idx_tenant_notifications ON notifications(tenant_id);
CREATE INDEX idx_user_notifications ON notifications(user_id);
CREATE INDEX idx_notification_created ON notifications(created_at);

-- Saved report definitions
CREATE TABLE report_definitions (
    id TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    project_id TEXT NOT NULL,
    name TEXT NOT NULL,
    source TEXT NOT NULL CHECK(source IN ('rfis', 'punch_items', 'daily_reports')),
    columns TEXT NOT NULL,
    status TEXT,
    priority TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (project_id) REFERENCES projects(id)
);
CREATE INDEX idx_tenant_report_definitions ON report_definitions(tenant_id);

-- Full-text search over RFIs (SQLite FTS5)
CREATE VIRTUAL TABLE rfis_fts USING fts5(
    title,
    description,
    reference_number,
    content='rfis',
    content_rowid='rowid'
);

-- Triggers to keep FTS index synchronized
CREATE TRIGGER rfis_ai AFTER INSERT ON rfis BEGIN
    INSERT INTO rfis_fts(rowid, title, description, reference_number)
    VALUES (new.rowid, new.title, new.description, new.reference_number);
END;

CREATE TRIGGER rfis_ad AFTER DELETE ON rfis BEGIN
    INSERT INTO rfis_fts(rfis_fts, rowid, title, description, reference_number)
    VALUES('delete', old.rowid, old.title, old.description, old.reference_number);
END;

CREATE TRIGGER rfis_au AFTER UPDATE ON rfis BEGIN
    INSERT INTO rfis_fts(rfis_fts, rowid, title, description, reference_number)
    VALUES('delete', old.rowid, old.title, old.description, old.reference_number);
    INSERT INTO rfis_fts(rowid, title, description, reference_number)
    VALUES (new.rowid, new.title, new.description, new.reference_number);
END;

-- API keys for authentication
CREATE TABLE api_keys (
    key_hash TEXT PRIMARY KEY,
    tenant_id TEXT NOT NULL,
    user_id TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_used TIMESTAMP,
    description TEXT
);
CREATE INDEX idx_tenant_keys ON api_keys(tenant_id);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
