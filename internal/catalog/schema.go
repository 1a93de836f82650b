package catalog

const schemaSQL = `
CREATE TABLE users (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	role TEXT NOT NULL CHECK (role IN ('admin', 'instructor', 'student')),
	status TEXT NOT NULL,
	joined TEXT NOT NULL
);
CREATE TABLE courses (
	code TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	instructor_id TEXT NOT NULL REFERENCES users(id),
	category TEXT NOT NULL,
	capacity INTEGER NOT NULL,
	credits INTEGER NOT NULL,
	status TEXT NOT NULL
);
CREATE TABLE enrollments (
	student_id TEXT NOT NULL REFERENCES users(id),
	course_code TEXT NOT NULL REFERENCES courses(code),
	progress INTEGER NOT NULL CHECK (progress BETWEEN 0 AND 100),
	grade TEXT NOT NULL,
	PRIMARY KEY (student_id, course_code)
);
CREATE TABLE assignments (
	id TEXT PRIMARY KEY,
	course_code TEXT NOT NULL REFERENCES courses(code),
	title TEXT NOT NULL,
	due TEXT NOT NULL,
	submitted INTEGER NOT NULL,
	status TEXT NOT NULL
);
CREATE TABLE announcements (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	author_id TEXT NOT NULL REFERENCES users(id),
	posted TEXT NOT NULL,
	audience TEXT NOT NULL,
	body TEXT NOT NULL
);
CREATE TABLE activity (
	at TEXT NOT NULL,
	actor_id TEXT NOT NULL REFERENCES users(id),
	action TEXT NOT NULL
);
CREATE TABLE monthly_enrollments (
	month TEXT PRIMARY KEY,
	count INTEGER NOT NULL
);
`
