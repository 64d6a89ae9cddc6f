package postgres

const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS accounts_email_key ON accounts (LOWER(email));

CREATE TABLE IF NOT EXISTS role_assignments (
	id          BIGSERIAL PRIMARY KEY,
	account_id  TEXT NOT NULL REFERENCES accounts (id),
	role        TEXT NOT NULL CHECK (role IN ('admin', 'alumni', 'employer')),
	assigned_by TEXT NOT NULL,
	assigned_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS role_assignments_account_idx ON role_assignments (account_id, id DESC);

CREATE TABLE IF NOT EXISTS verification_profiles (
	account_id   TEXT PRIMARY KEY REFERENCES accounts (id),
	status       TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
	id_number    TEXT NOT NULL,
	account_type TEXT NOT NULL CHECK (account_type IN ('alumni', 'employer')),
	full_name    TEXT NOT NULL DEFAULT '',
	company      TEXT NOT NULL DEFAULT '',
	reviewed_by  TEXT,
	reviewed_at  TIMESTAMPTZ,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS job_postings (
	id          SERIAL PRIMARY KEY,
	owner_id    TEXT NOT NULL REFERENCES accounts (id),
	title       TEXT NOT NULL,
	company     TEXT NOT NULL,
	location    TEXT NOT NULL DEFAULT '',
	type        TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	is_active   BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS job_applications (
	id               SERIAL PRIMARY KEY,
	job_id           INTEGER NOT NULL REFERENCES job_postings (id) ON DELETE CASCADE,
	applicant_id     TEXT NOT NULL REFERENCES accounts (id),
	status           TEXT NOT NULL DEFAULT 'submitted' CHECK (status IN ('submitted', 'accepted', 'rejected')),
	cover_letter     TEXT NOT NULL DEFAULT '',
	resume_reference TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT job_applications_job_applicant_key UNIQUE (job_id, applicant_id)
);

CREATE TABLE IF NOT EXISTS notifications (
	id         SERIAL PRIMARY KEY,
	account_id TEXT NOT NULL REFERENCES accounts (id),
	title      TEXT NOT NULL,
	message    TEXT NOT NULL,
	is_read    BOOLEAN NOT NULL DEFAULT FALSE,
	attributes JSONB,
	created_on DATE NOT NULL DEFAULT CURRENT_DATE
);
`
