// Package plan loads seeding plans and checks their reference ordering.
//
// A plan is a YAML (or JSON) file listing import units and, optionally, named
// backend connections:
//
//	connections:
//	  docs:
//	    driver: mongodb
//	    uri: mongodb://localhost:27017
//	    name: seed
//	units:
//	  - creation_order: 1
//	    entity: Organization
//	    path_dev: data/dev/organizations.json
//	    path_prod: data/prod/organizations.json
//	    schema_file: schemas/organization.cue
//	  - creation_order: 2
//	    entity: User
//	    path_dev: data/dev/users.yaml
//	    refs:
//	      organization_id: Organization
//
// Unknown keys are rejected. Schema files and relative source paths are
// resolved against the plan directory.
//
// Lint reports references that cannot resolve given the creation order, without
// touching any backend.
package plan
