package ast

// Arena provides arena-style allocation for AST nodes: every node
// kind lives in its own pre-grown slice, so a whole parse's worth of
// nodes is a handful of large allocations instead of thousands of
// small ones. This generalizes paserati/pkg/parser/arena.go's
// per-kind-slice pattern from its ~20 node kinds to the full
// Expr/Stat/Type/TypePack taxonomy of spec.md §3.2.
//
// A node's pointer is stable for the arena's lifetime (a slice that
// grows past its cap moves to a new backing array, but pointers handed
// out earlier keep referring to the node as first allocated) and is what
// pkg/cst uses as the node identity key for its side-table, per
// spec.md §9.
type Arena struct {
	groupExprs          []GroupExpr
	constantNilExprs     []ConstantNilExpr
	constantBoolExprs    []ConstantBoolExpr
	constantNumberExprs  []ConstantNumberExpr
	constantStringExprs  []ConstantStringExpr
	localRefExprs        []LocalRefExpr
	globalRefExprs       []GlobalRefExpr
	varargExprs          []VarargExpr
	callExprs            []CallExpr
	indexNameExprs       []IndexNameExpr
	indexExprExprs       []IndexExprExpr
	functionExprs        []FunctionExpr
	tableExprs           []TableExpr
	unaryExprs           []UnaryExpr
	binaryExprs          []BinaryExpr
	typeAssertionExprs   []TypeAssertionExpr
	ifElseExprs          []IfElseExpr
	interpStringExprs    []InterpStringExpr
	errorExprs           []ErrorExpr

	blockStats          []BlockStat
	ifStats             []IfStat
	whileStats          []WhileStat
	repeatStats         []RepeatStat
	breakStats          []BreakStat
	continueStats       []ContinueStat
	returnStats         []ReturnStat
	expressionStats     []ExpressionStat
	localDeclStats      []LocalDeclStat
	numericForStats     []NumericForStat
	genericForStats     []GenericForStat
	assignStats         []AssignStat
	compoundAssignStats []CompoundAssignStat
	functionDeclStats   []FunctionDeclStat
	localFunctionStats  []LocalFunctionStat
	typeAliasStats      []TypeAliasStat
	typeFunctionStats   []TypeFunctionStat
	errorStats          []ErrorStat

	typeRefTypes         []TypeRefType
	functionTypeTypes    []FunctionTypeType
	tableTypeTypes       []TableTypeType
	typeofTypes          []TypeofType
	unionTypes           []UnionType
	intersectionTypes    []IntersectionType
	singletonBoolTypes   []SingletonBoolType
	singletonStringTypes []SingletonStringType
	errorTypes           []ErrorType

	variadicPacks        []VariadicPack
	genericTypePackRefs  []GenericTypePackRef
	explicitPacks        []ExplicitPack

	locals           []Local
	genericTypes     []GenericType
	genericTypePacks []GenericTypePack
}

// NewArena creates an arena with capacity presized for a
// medium-sized program; slices grow past this if needed.
func NewArena() *Arena {
	return &Arena{
		groupExprs:          make([]GroupExpr, 0, 32),
		constantNilExprs:    make([]ConstantNilExpr, 0, 16),
		constantBoolExprs:   make([]ConstantBoolExpr, 0, 16),
		constantNumberExprs: make([]ConstantNumberExpr, 0, 64),
		constantStringExprs: make([]ConstantStringExpr, 0, 64),
		localRefExprs:       make([]LocalRefExpr, 0, 256),
		globalRefExprs:      make([]GlobalRefExpr, 0, 128),
		varargExprs:         make([]VarargExpr, 0, 8),
		callExprs:           make([]CallExpr, 0, 128),
		indexNameExprs:      make([]IndexNameExpr, 0, 128),
		indexExprExprs:      make([]IndexExprExpr, 0, 32),
		functionExprs:       make([]FunctionExpr, 0, 32),
		tableExprs:          make([]TableExpr, 0, 32),
		unaryExprs:          make([]UnaryExpr, 0, 32),
		binaryExprs:         make([]BinaryExpr, 0, 128),
		typeAssertionExprs:  make([]TypeAssertionExpr, 0, 16),
		ifElseExprs:         make([]IfElseExpr, 0, 8),
		interpStringExprs:   make([]InterpStringExpr, 0, 8),
		errorExprs:          make([]ErrorExpr, 0, 4),

		blockStats:          make([]BlockStat, 0, 64),
		ifStats:             make([]IfStat, 0, 32),
		whileStats:          make([]WhileStat, 0, 16),
		repeatStats:         make([]RepeatStat, 0, 8),
		breakStats:          make([]BreakStat, 0, 8),
		continueStats:       make([]ContinueStat, 0, 8),
		returnStats:         make([]ReturnStat, 0, 32),
		expressionStats:     make([]ExpressionStat, 0, 64),
		localDeclStats:      make([]LocalDeclStat, 0, 64),
		numericForStats:     make([]NumericForStat, 0, 8),
		genericForStats:     make([]GenericForStat, 0, 8),
		assignStats:         make([]AssignStat, 0, 32),
		compoundAssignStats: make([]CompoundAssignStat, 0, 16),
		functionDeclStats:   make([]FunctionDeclStat, 0, 32),
		localFunctionStats:  make([]LocalFunctionStat, 0, 16),
		typeAliasStats:      make([]TypeAliasStat, 0, 16),
		typeFunctionStats:   make([]TypeFunctionStat, 0, 4),
		errorStats:          make([]ErrorStat, 0, 4),

		typeRefTypes:         make([]TypeRefType, 0, 64),
		functionTypeTypes:    make([]FunctionTypeType, 0, 16),
		tableTypeTypes:       make([]TableTypeType, 0, 16),
		typeofTypes:          make([]TypeofType, 0, 4),
		unionTypes:           make([]UnionType, 0, 16),
		intersectionTypes:    make([]IntersectionType, 0, 8),
		singletonBoolTypes:   make([]SingletonBoolType, 0, 4),
		singletonStringTypes: make([]SingletonStringType, 0, 8),
		errorTypes:           make([]ErrorType, 0, 4),

		variadicPacks:       make([]VariadicPack, 0, 8),
		genericTypePackRefs: make([]GenericTypePackRef, 0, 8),
		explicitPacks:       make([]ExplicitPack, 0, 16),

		locals:           make([]Local, 0, 128),
		genericTypes:     make([]GenericType, 0, 32),
		genericTypePacks: make([]GenericTypePack, 0, 8),
	}
}

// Reset clears the arena for reuse, keeping backing memory allocated.
func (a *Arena) Reset() {
	a.groupExprs = a.groupExprs[:0]
	a.constantNilExprs = a.constantNilExprs[:0]
	a.constantBoolExprs = a.constantBoolExprs[:0]
	a.constantNumberExprs = a.constantNumberExprs[:0]
	a.constantStringExprs = a.constantStringExprs[:0]
	a.localRefExprs = a.localRefExprs[:0]
	a.globalRefExprs = a.globalRefExprs[:0]
	a.varargExprs = a.varargExprs[:0]
	a.callExprs = a.callExprs[:0]
	a.indexNameExprs = a.indexNameExprs[:0]
	a.indexExprExprs = a.indexExprExprs[:0]
	a.functionExprs = a.functionExprs[:0]
	a.tableExprs = a.tableExprs[:0]
	a.unaryExprs = a.unaryExprs[:0]
	a.binaryExprs = a.binaryExprs[:0]
	a.typeAssertionExprs = a.typeAssertionExprs[:0]
	a.ifElseExprs = a.ifElseExprs[:0]
	a.interpStringExprs = a.interpStringExprs[:0]
	a.errorExprs = a.errorExprs[:0]

	a.blockStats = a.blockStats[:0]
	a.ifStats = a.ifStats[:0]
	a.whileStats = a.whileStats[:0]
	a.repeatStats = a.repeatStats[:0]
	a.breakStats = a.breakStats[:0]
	a.continueStats = a.continueStats[:0]
	a.returnStats = a.returnStats[:0]
	a.expressionStats = a.expressionStats[:0]
	a.localDeclStats = a.localDeclStats[:0]
	a.numericForStats = a.numericForStats[:0]
	a.genericForStats = a.genericForStats[:0]
	a.assignStats = a.assignStats[:0]
	a.compoundAssignStats = a.compoundAssignStats[:0]
	a.functionDeclStats = a.functionDeclStats[:0]
	a.localFunctionStats = a.localFunctionStats[:0]
	a.typeAliasStats = a.typeAliasStats[:0]
	a.typeFunctionStats = a.typeFunctionStats[:0]
	a.errorStats = a.errorStats[:0]

	a.typeRefTypes = a.typeRefTypes[:0]
	a.functionTypeTypes = a.functionTypeTypes[:0]
	a.tableTypeTypes = a.tableTypeTypes[:0]
	a.typeofTypes = a.typeofTypes[:0]
	a.unionTypes = a.unionTypes[:0]
	a.intersectionTypes = a.intersectionTypes[:0]
	a.singletonBoolTypes = a.singletonBoolTypes[:0]
	a.singletonStringTypes = a.singletonStringTypes[:0]
	a.errorTypes = a.errorTypes[:0]

	a.variadicPacks = a.variadicPacks[:0]
	a.genericTypePackRefs = a.genericTypePackRefs[:0]
	a.explicitPacks = a.explicitPacks[:0]

	a.locals = a.locals[:0]
	a.genericTypes = a.genericTypes[:0]
	a.genericTypePacks = a.genericTypePacks[:0]
}

// Allocation methods -- each appends a zeroed node and returns a
// pointer into the arena's backing slice.

func (a *Arena) NewGroupExpr() *GroupExpr {
	a.groupExprs = append(a.groupExprs, GroupExpr{})
	return &a.groupExprs[len(a.groupExprs)-1]
}

func (a *Arena) NewConstantNilExpr() *ConstantNilExpr {
	a.constantNilExprs = append(a.constantNilExprs, ConstantNilExpr{})
	return &a.constantNilExprs[len(a.constantNilExprs)-1]
}

func (a *Arena) NewConstantBoolExpr() *ConstantBoolExpr {
	a.constantBoolExprs = append(a.constantBoolExprs, ConstantBoolExpr{})
	return &a.constantBoolExprs[len(a.constantBoolExprs)-1]
}

func (a *Arena) NewConstantNumberExpr() *ConstantNumberExpr {
	a.constantNumberExprs = append(a.constantNumberExprs, ConstantNumberExpr{})
	return &a.constantNumberExprs[len(a.constantNumberExprs)-1]
}

func (a *Arena) NewConstantStringExpr() *ConstantStringExpr {
	a.constantStringExprs = append(a.constantStringExprs, ConstantStringExpr{})
	return &a.constantStringExprs[len(a.constantStringExprs)-1]
}

func (a *Arena) NewLocalRefExpr() *LocalRefExpr {
	a.localRefExprs = append(a.localRefExprs, LocalRefExpr{})
	return &a.localRefExprs[len(a.localRefExprs)-1]
}

func (a *Arena) NewGlobalRefExpr() *GlobalRefExpr {
	a.globalRefExprs = append(a.globalRefExprs, GlobalRefExpr{})
	return &a.globalRefExprs[len(a.globalRefExprs)-1]
}

func (a *Arena) NewVarargExpr() *VarargExpr {
	a.varargExprs = append(a.varargExprs, VarargExpr{})
	return &a.varargExprs[len(a.varargExprs)-1]
}

func (a *Arena) NewCallExpr() *CallExpr {
	a.callExprs = append(a.callExprs, CallExpr{})
	return &a.callExprs[len(a.callExprs)-1]
}

func (a *Arena) NewIndexNameExpr() *IndexNameExpr {
	a.indexNameExprs = append(a.indexNameExprs, IndexNameExpr{})
	return &a.indexNameExprs[len(a.indexNameExprs)-1]
}

func (a *Arena) NewIndexExprExpr() *IndexExprExpr {
	a.indexExprExprs = append(a.indexExprExprs, IndexExprExpr{})
	return &a.indexExprExprs[len(a.indexExprExprs)-1]
}

func (a *Arena) NewFunctionExpr() *FunctionExpr {
	a.functionExprs = append(a.functionExprs, FunctionExpr{})
	return &a.functionExprs[len(a.functionExprs)-1]
}

func (a *Arena) NewTableExpr() *TableExpr {
	a.tableExprs = append(a.tableExprs, TableExpr{})
	return &a.tableExprs[len(a.tableExprs)-1]
}

func (a *Arena) NewUnaryExpr() *UnaryExpr {
	a.unaryExprs = append(a.unaryExprs, UnaryExpr{})
	return &a.unaryExprs[len(a.unaryExprs)-1]
}

func (a *Arena) NewBinaryExpr() *BinaryExpr {
	a.binaryExprs = append(a.binaryExprs, BinaryExpr{})
	return &a.binaryExprs[len(a.binaryExprs)-1]
}

func (a *Arena) NewTypeAssertionExpr() *TypeAssertionExpr {
	a.typeAssertionExprs = append(a.typeAssertionExprs, TypeAssertionExpr{})
	return &a.typeAssertionExprs[len(a.typeAssertionExprs)-1]
}

func (a *Arena) NewIfElseExpr() *IfElseExpr {
	a.ifElseExprs = append(a.ifElseExprs, IfElseExpr{})
	return &a.ifElseExprs[len(a.ifElseExprs)-1]
}

func (a *Arena) NewInterpStringExpr() *InterpStringExpr {
	a.interpStringExprs = append(a.interpStringExprs, InterpStringExpr{})
	return &a.interpStringExprs[len(a.interpStringExprs)-1]
}

func (a *Arena) NewErrorExpr() *ErrorExpr {
	a.errorExprs = append(a.errorExprs, ErrorExpr{})
	return &a.errorExprs[len(a.errorExprs)-1]
}

func (a *Arena) NewBlockStat() *BlockStat {
	a.blockStats = append(a.blockStats, BlockStat{})
	return &a.blockStats[len(a.blockStats)-1]
}

func (a *Arena) NewIfStat() *IfStat {
	a.ifStats = append(a.ifStats, IfStat{})
	return &a.ifStats[len(a.ifStats)-1]
}

func (a *Arena) NewWhileStat() *WhileStat {
	a.whileStats = append(a.whileStats, WhileStat{})
	return &a.whileStats[len(a.whileStats)-1]
}

func (a *Arena) NewRepeatStat() *RepeatStat {
	a.repeatStats = append(a.repeatStats, RepeatStat{})
	return &a.repeatStats[len(a.repeatStats)-1]
}

func (a *Arena) NewBreakStat() *BreakStat {
	a.breakStats = append(a.breakStats, BreakStat{})
	return &a.breakStats[len(a.breakStats)-1]
}

func (a *Arena) NewContinueStat() *ContinueStat {
	a.continueStats = append(a.continueStats, ContinueStat{})
	return &a.continueStats[len(a.continueStats)-1]
}

func (a *Arena) NewReturnStat() *ReturnStat {
	a.returnStats = append(a.returnStats, ReturnStat{})
	return &a.returnStats[len(a.returnStats)-1]
}

func (a *Arena) NewExpressionStat() *ExpressionStat {
	a.expressionStats = append(a.expressionStats, ExpressionStat{})
	return &a.expressionStats[len(a.expressionStats)-1]
}

func (a *Arena) NewLocalDeclStat() *LocalDeclStat {
	a.localDeclStats = append(a.localDeclStats, LocalDeclStat{})
	return &a.localDeclStats[len(a.localDeclStats)-1]
}

func (a *Arena) NewNumericForStat() *NumericForStat {
	a.numericForStats = append(a.numericForStats, NumericForStat{})
	return &a.numericForStats[len(a.numericForStats)-1]
}

func (a *Arena) NewGenericForStat() *GenericForStat {
	a.genericForStats = append(a.genericForStats, GenericForStat{})
	return &a.genericForStats[len(a.genericForStats)-1]
}

func (a *Arena) NewAssignStat() *AssignStat {
	a.assignStats = append(a.assignStats, AssignStat{})
	return &a.assignStats[len(a.assignStats)-1]
}

func (a *Arena) NewCompoundAssignStat() *CompoundAssignStat {
	a.compoundAssignStats = append(a.compoundAssignStats, CompoundAssignStat{})
	return &a.compoundAssignStats[len(a.compoundAssignStats)-1]
}

func (a *Arena) NewFunctionDeclStat() *FunctionDeclStat {
	a.functionDeclStats = append(a.functionDeclStats, FunctionDeclStat{})
	return &a.functionDeclStats[len(a.functionDeclStats)-1]
}

func (a *Arena) NewLocalFunctionStat() *LocalFunctionStat {
	a.localFunctionStats = append(a.localFunctionStats, LocalFunctionStat{})
	return &a.localFunctionStats[len(a.localFunctionStats)-1]
}

func (a *Arena) NewTypeAliasStat() *TypeAliasStat {
	a.typeAliasStats = append(a.typeAliasStats, TypeAliasStat{})
	return &a.typeAliasStats[len(a.typeAliasStats)-1]
}

func (a *Arena) NewTypeFunctionStat() *TypeFunctionStat {
	a.typeFunctionStats = append(a.typeFunctionStats, TypeFunctionStat{})
	return &a.typeFunctionStats[len(a.typeFunctionStats)-1]
}

func (a *Arena) NewErrorStat() *ErrorStat {
	a.errorStats = append(a.errorStats, ErrorStat{})
	return &a.errorStats[len(a.errorStats)-1]
}

func (a *Arena) NewTypeRefType() *TypeRefType {
	a.typeRefTypes = append(a.typeRefTypes, TypeRefType{})
	return &a.typeRefTypes[len(a.typeRefTypes)-1]
}

func (a *Arena) NewFunctionTypeType() *FunctionTypeType {
	a.functionTypeTypes = append(a.functionTypeTypes, FunctionTypeType{})
	return &a.functionTypeTypes[len(a.functionTypeTypes)-1]
}

func (a *Arena) NewTableTypeType() *TableTypeType {
	a.tableTypeTypes = append(a.tableTypeTypes, TableTypeType{})
	return &a.tableTypeTypes[len(a.tableTypeTypes)-1]
}

func (a *Arena) NewTypeofType() *TypeofType {
	a.typeofTypes = append(a.typeofTypes, TypeofType{})
	return &a.typeofTypes[len(a.typeofTypes)-1]
}

func (a *Arena) NewUnionType() *UnionType {
	a.unionTypes = append(a.unionTypes, UnionType{})
	return &a.unionTypes[len(a.unionTypes)-1]
}

func (a *Arena) NewIntersectionType() *IntersectionType {
	a.intersectionTypes = append(a.intersectionTypes, IntersectionType{})
	return &a.intersectionTypes[len(a.intersectionTypes)-1]
}

func (a *Arena) NewSingletonBoolType() *SingletonBoolType {
	a.singletonBoolTypes = append(a.singletonBoolTypes, SingletonBoolType{})
	return &a.singletonBoolTypes[len(a.singletonBoolTypes)-1]
}

func (a *Arena) NewSingletonStringType() *SingletonStringType {
	a.singletonStringTypes = append(a.singletonStringTypes, SingletonStringType{})
	return &a.singletonStringTypes[len(a.singletonStringTypes)-1]
}

func (a *Arena) NewErrorType() *ErrorType {
	a.errorTypes = append(a.errorTypes, ErrorType{})
	return &a.errorTypes[len(a.errorTypes)-1]
}

func (a *Arena) NewVariadicPack() *VariadicPack {
	a.variadicPacks = append(a.variadicPacks, VariadicPack{})
	return &a.variadicPacks[len(a.variadicPacks)-1]
}

func (a *Arena) NewGenericTypePackRef() *GenericTypePackRef {
	a.genericTypePackRefs = append(a.genericTypePackRefs, GenericTypePackRef{})
	return &a.genericTypePackRefs[len(a.genericTypePackRefs)-1]
}

func (a *Arena) NewExplicitPack() *ExplicitPack {
	a.explicitPacks = append(a.explicitPacks, ExplicitPack{})
	return &a.explicitPacks[len(a.explicitPacks)-1]
}

func (a *Arena) NewLocal() *Local {
	a.locals = append(a.locals, Local{})
	return &a.locals[len(a.locals)-1]
}

func (a *Arena) NewGenericType() *GenericType {
	a.genericTypes = append(a.genericTypes, GenericType{})
	return &a.genericTypes[len(a.genericTypes)-1]
}

func (a *Arena) NewGenericTypePack() *GenericTypePack {
	a.genericTypePacks = append(a.genericTypePacks, GenericTypePack{})
	return &a.genericTypePacks[len(a.genericTypePacks)-1]
}
