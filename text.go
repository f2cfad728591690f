package main

var (
	SiteTitle = "kholcomb"

	SiteTagline = `Senior Security Engineer | CCSP | CISSP`

	PrivacyPolicy = `This site keeps a minimal visit log to understand which pages get read.
	IP addresses are salted and hashed before storage and never kept in raw form,
	the Do Not Track header is honored, and records older than twelve months are
	deleted automatically. Nothing is shared with third parties and no cookies are
	set for regular visitors.`
)
