package graph

// Well-known RDF IRIs.
const (
	RDFType   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	RDFSLabel = "http://www.w3.org/2000/01/rdf-schema#label"
)

// Namespace is the ontology namespace all pipeline-minted classes and
// predicates live under.
const Namespace = "http://semantic-web-kms.org/wdo#"

// Entity classes.
const (
	ClassRepository    = Namespace + "Repository"
	ClassFile          = Namespace + "File"
	ClassCommit        = Namespace + "Commit"
	ClassCommitMessage = Namespace + "CommitMessage"
	ClassIssue         = Namespace + "Issue"
	ClassContributor   = Namespace + "Contributor"

	ClassClassDefinition      = Namespace + "ClassDefinition"
	ClassFunctionDefinition   = Namespace + "FunctionDefinition"
	ClassVariableDeclaration  = Namespace + "VariableDeclaration"
	ClassImportDeclaration    = Namespace + "ImportDeclaration"
	ClassFunctionCall         = Namespace + "FunctionCall"
	ClassCodeComment          = Namespace + "CodeComment"
	ClassParameter            = Namespace + "Parameter"
	ClassAttributeDeclaration = Namespace + "AttributeDeclaration"
	ClassPackageDeclaration   = Namespace + "PackageDeclaration"
	ClassStructDefinition     = Namespace + "StructDefinition"
	ClassInterfaceDefinition  = Namespace + "InterfaceDefinition"
	ClassEnumDefinition       = Namespace + "EnumDefinition"
	ClassTraitDefinition      = Namespace + "TraitDefinition"
)

// Repository and history predicates. Relationship predicates come in
// forward/inverse pairs and are always emitted together.
const (
	PredRepositoryURL = Namespace + "repositoryURL"

	PredHasContributor = Namespace + "hasContributor"
	PredContributesTo  = Namespace + "contributesTo"

	PredHasCommit  = Namespace + "hasCommit"
	PredIsCommitIn = Namespace + "isCommitIn"

	PredCommittedBy = Namespace + "committedBy"
	PredCommitted   = Namespace + "committed"

	PredCommitHash      = Namespace + "commitHash"
	PredCommitTimestamp = Namespace + "committedAtTimestamp"

	PredHasMessage  = Namespace + "hasCommitMessage"
	PredIsMessageOf = Namespace + "isCommitMessageOf"
	PredMessageText = Namespace + "messageText"

	PredAddressesIssue   = Namespace + "addressesIssue"
	PredIssueAddressedBy = Namespace + "isAddressedBy"
	PredFixesIssue       = Namespace + "fixesIssue"
	PredIssueFixedBy     = Namespace + "isFixedBy"
	PredIssueNumber      = Namespace + "issueNumber"

	PredModifies     = Namespace + "modifies"
	PredIsModifiedBy = Namespace + "isModifiedBy"
)

// File and code-entity predicates.
const (
	PredPath         = Namespace + "path"
	PredExtension    = Namespace + "extension"
	PredSizeBytes    = Namespace + "sizeInBytes"
	PredLanguage     = Namespace + "language"
	PredContentHash  = Namespace + "contentHash"
	PredContainsFile = Namespace + "containsFile"
	PredIsFileOf     = Namespace + "isFileOf"

	PredDeclares     = Namespace + "declares"
	PredIsDeclaredIn = Namespace + "isDeclaredIn"

	PredHasMember  = Namespace + "hasMember"
	PredIsMemberOf = Namespace + "isMemberOf"

	PredExtends        = Namespace + "extends"
	PredImplements     = Namespace + "implements"
	PredHasDecorator   = Namespace + "hasDecorator"
	PredHasParameter   = Namespace + "hasParameter"
	PredReturns        = Namespace + "returnType"
	PredCallsFunction  = Namespace + "calls"
	PredCallArgument   = Namespace + "callArgument"
	PredRawText        = Namespace + "rawText"
	PredStartLine      = Namespace + "startsAtLine"
	PredEndLine        = Namespace + "endsAtLine"
	PredComplexity     = Namespace + "cyclomaticComplexity"
	PredAccessModifier = Namespace + "accessModifier"
)
